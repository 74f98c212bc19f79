// Package index implements myxa's Index (spec component C3): a mapping
// from package name to a namespace of immutable published snapshots.
//
// Grounded on golang-dep's SourceManager, which likewise owns a
// content-addressed cache of everything the Solver is allowed to see, the
// Index here is a plain in-memory map — no locking, no I/O — per the
// synchronous, single-threaded resource model of spec §5.
package index

import (
	"sort"

	"github.com/myxa-lang/myxa/internal/merr"
	"github.com/myxa-lang/myxa/internal/model"
	"github.com/myxa-lang/myxa/internal/mver"
)

// namespace holds every published version of one package name.
type namespace struct {
	name     string
	versions map[string]*model.Package // keyed by version.String()
}

// Index is a mapping from package name to a namespace of immutable
// published snapshots. Within a namespace, no two packages share a
// version; removing the last version of a namespace removes the namespace.
type Index struct {
	namespaces map[string]*namespace
}

// New returns an empty Index.
func New() *Index {
	return &Index{namespaces: map[string]*namespace{}}
}

// Add inserts a deep copy of pkg. It fails with merr.DuplicateVersion if
// (pkg.Info.Name, pkg.Info.Version) already exists.
func (idx *Index) Add(pkg *model.Package) error {
	name := pkg.Info.Name
	ns, ok := idx.namespaces[name]
	if !ok {
		ns = &namespace{name: name, versions: map[string]*model.Package{}}
		idx.namespaces[name] = ns
	}

	key := pkg.Info.Version.String()
	if _, exists := ns.versions[key]; exists {
		return merr.User(merr.DuplicateVersion, "%s %s is already published", name, key)
	}

	ns.versions[key] = pkg.Clone()
	return nil
}

// Remove deletes (name, v) from the Index. It fails with merr.NotFound if
// absent. Removing the last version of a namespace removes the namespace
// entirely.
func (idx *Index) Remove(name string, v mver.Version) error {
	ns, ok := idx.namespaces[name]
	if !ok {
		return merr.User(merr.NotFoundPackage, "%s", name)
	}

	key := v.String()
	if _, exists := ns.versions[key]; !exists {
		return merr.User(merr.NotFoundVersion, "%s %s", name, key)
	}

	delete(ns.versions, key)
	if len(ns.versions) == 0 {
		delete(idx.namespaces, name)
	}
	return nil
}

// Get returns a deep copy of (name, v). It fails with merr.NotFound if
// absent, distinguishing between an unknown package and an unknown version.
func (idx *Index) Get(name string, v mver.Version) (*model.Package, error) {
	ns, ok := idx.namespaces[name]
	if !ok {
		return nil, merr.User(merr.NotFoundPackage, "%s", name)
	}
	pkg, ok := ns.versions[v.String()]
	if !ok {
		return nil, merr.User(merr.NotFoundVersion, "%s %s", name, v)
	}
	return pkg.Clone(), nil
}

// GetLatest returns a deep copy of the package with the highest version
// published under name, per the Version total order.
func (idx *Index) GetLatest(name string) (*model.Package, error) {
	versions, err := idx.ListVersionsSorted(name)
	if err != nil {
		return nil, err
	}
	return idx.Get(name, versions[0])
}

// ListVersionsSorted returns every published version of name in
// descending Version order. It fails with merr.NotFound if name has no
// published versions.
func (idx *Index) ListVersionsSorted(name string) ([]mver.Version, error) {
	ns, ok := idx.namespaces[name]
	if !ok || len(ns.versions) == 0 {
		return nil, merr.User(merr.NotFoundPackage, "%s", name)
	}

	versions := make(mver.List, 0, len(ns.versions))
	for _, pkg := range ns.versions {
		versions = append(versions, pkg.Info.Version)
	}
	sort.Sort(versions)
	return []mver.Version(versions), nil
}

// Has reports whether (name, v) exists without copying the package.
func (idx *Index) Has(name string, v mver.Version) bool {
	ns, ok := idx.namespaces[name]
	if !ok {
		return false
	}
	_, ok = ns.versions[v.String()]
	return ok
}

// Names returns every package name with at least one published version,
// in lexicographic order.
func (idx *Index) Names() []string {
	names := make([]string, 0, len(idx.namespaces))
	for n := range idx.namespaces {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a deep copy of every published package, keyed first by
// package name and then by version string, for persistence
// (internal/store). It is the only way anything outside
// this package observes the full namespace contents at once.
func (idx *Index) Snapshot() map[string]map[string]*model.Package {
	out := make(map[string]map[string]*model.Package, len(idx.namespaces))
	for name, ns := range idx.namespaces {
		versions := make(map[string]*model.Package, len(ns.versions))
		for k, pkg := range ns.versions {
			versions[k] = pkg.Clone()
		}
		out[name] = versions
	}
	return out
}

// FromSnapshot rebuilds an Index from a Snapshot, deep-copying every
// package it contains.
func FromSnapshot(snap map[string]map[string]*model.Package) *Index {
	idx := New()
	for name, versions := range snap {
		ns := &namespace{name: name, versions: map[string]*model.Package{}}
		for k, pkg := range versions {
			ns.versions[k] = pkg.Clone()
		}
		idx.namespaces[name] = ns
	}
	return idx
}
