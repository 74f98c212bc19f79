// Package cache implements myxa's optional disk-backed query cache (spec
// component C8), grounded on golang-dep's internal/gps/source_cache_bolt.go:
// a BoltDB file memoising the Index queries that the CLI layer repeats most
// often (GetLatest, ListVersionsSorted). Of the CLI commands, only
// `myxa index <name>` reads and fills it, for the version listing.
//
// The cache is consulted by the CLI layer only; the pure, synchronous C3
// Index never reads or writes it (spec §5). A cache miss, a stale entry
// (older than Epoch), or a disabled cache (MYXA_CACHE unset) transparently
// falls back to the Index.
package cache

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/boltdb/bolt"
	"github.com/myxa-lang/myxa/internal/mlog"
	"github.com/myxa-lang/myxa/internal/mver"
	"github.com/pkg/errors"
)

var versionsBucket = []byte("versions")

// entry is the timestamped payload stored under each key, so that stale
// data can be detected without a second index altogether.
type entry struct {
	Versions  []string `json:"versions,omitempty"`
	StoredAt  int64    `json:"stored_at"`
}

// Cache wraps a BoltDB file. A nil *Cache is valid and behaves as an
// always-miss cache, so callers don't need to special-case "caching
// disabled" at every call site.
type Cache struct {
	db     *bolt.DB
	epoch  int64
	logger *mlog.Logger
}

// Open opens (creating if necessary) a BoltDB cache file at path. epoch is
// a unix timestamp; entries stored before it are treated as stale.
func Open(path string, epoch int64, logger *mlog.Logger) (*Cache, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create cache directory %q", dir)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open cache file %q", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(versionsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to initialise cache buckets")
	}

	return &Cache{db: db, epoch: epoch, logger: logger}, nil
}

// Close releases the underlying BoltDB file.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return errors.Wrap(c.db.Close(), "failed to close cache file")
}

// GetVersionsSorted returns a cached descending version list for name, if
// present and not older than the cache's epoch.
func (c *Cache) GetVersionsSorted(name string) ([]mver.Version, bool) {
	if c == nil {
		return nil, false
	}

	var e entry
	found := false
	c.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(versionsBucket).Get([]byte(name))
		if raw == nil {
			return nil
		}
		if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&e); err != nil {
			return nil
		}
		found = true
		return nil
	})

	if !found || e.StoredAt < c.epoch {
		return nil, false
	}

	versions := make([]mver.Version, 0, len(e.Versions))
	for _, s := range e.Versions {
		v, err := mver.Parse(s)
		if err != nil {
			if c.logger != nil {
				c.logger.Debugf("cache: dropping malformed cached version %q for %s", s, name)
			}
			return nil, false
		}
		versions = append(versions, v)
	}
	return versions, true
}

// PutVersionsSorted stores the descending version list for name.
func (c *Cache) PutVersionsSorted(name string, versions []mver.Version, now int64) error {
	if c == nil {
		return nil
	}

	strs := make([]string, len(versions))
	for i, v := range versions {
		strs[i] = v.String()
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(entry{Versions: strs, StoredAt: now}); err != nil {
		return err
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(versionsBucket).Put([]byte(name), buf.Bytes())
	})
}

// GetLatest returns the cached latest version for name, if present and
// fresh. It is derived from the cached descending version list, matching
// Index.GetLatest's own definition (the highest version under the total
// order) rather than caching a second, independently-invalidated value.
func (c *Cache) GetLatest(name string) (mver.Version, bool) {
	versions, ok := c.GetVersionsSorted(name)
	if !ok || len(versions) == 0 {
		return mver.Version{}, false
	}
	return versions[0], true
}
