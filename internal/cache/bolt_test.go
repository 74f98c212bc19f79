package cache

import (
	"path/filepath"
	"testing"

	"github.com/myxa-lang/myxa/internal/mver"
)

func TestNilCacheAlwaysMisses(t *testing.T) {
	var c *Cache
	if _, ok := c.GetVersionsSorted("euler"); ok {
		t.Error("nil cache reported a hit")
	}
	if _, ok := c.GetLatest("euler"); ok {
		t.Error("nil cache reported a hit")
	}
	if err := c.PutVersionsSorted("euler", nil, 0); err != nil {
		t.Errorf("PutVersionsSorted on nil cache returned error: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close on nil cache returned error: %v", err)
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "myxa-cache.db")
	c, err := Open(path, 0, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	versions := []mver.Version{mver.MustParse("2.1"), mver.MustParse("1.0")}
	if err := c.PutVersionsSorted("flatty", versions, 100); err != nil {
		t.Fatalf("PutVersionsSorted: %v", err)
	}

	got, ok := c.GetVersionsSorted("flatty")
	if !ok {
		t.Fatal("GetVersionsSorted: miss, want hit")
	}
	if len(got) != 2 || got[0].String() != "2.1" || got[1].String() != "1.0" {
		t.Errorf("GetVersionsSorted = %v, want [2.1 1.0]", got)
	}

	latest, ok := c.GetLatest("flatty")
	if !ok || latest.String() != "2.1" {
		t.Errorf("GetLatest = %v, %v, want 2.1, true", latest, ok)
	}
}

func TestStaleEntryBelowEpochMisses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "myxa-cache.db")
	c, err := Open(path, 500, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	if err := c.PutVersionsSorted("flatty", []mver.Version{mver.MustParse("1.0")}, 100); err != nil {
		t.Fatalf("PutVersionsSorted: %v", err)
	}

	if _, ok := c.GetVersionsSorted("flatty"); ok {
		t.Error("GetVersionsSorted returned a hit for an entry older than the cache epoch")
	}
}

func TestUnknownNameMisses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "myxa-cache.db")
	c, err := Open(path, 0, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	if _, ok := c.GetVersionsSorted("nonexistent"); ok {
		t.Error("GetVersionsSorted hit for a name never stored")
	}
}
