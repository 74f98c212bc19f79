// Package myxa implements the Package Lifecycle (spec component C6): the
// glue layer that orchestrates Version, Interface Model, Index, Differ, and
// Solver into the operations a user actually invokes. Grounded on
// golang-dep's root `dep` package (context.go, init.go, lock.go), which
// plays the same role over gps's lower-level types.
package myxa

import (
	"os"

	"github.com/myxa-lang/myxa/internal/diff"
	"github.com/myxa-lang/myxa/internal/index"
	"github.com/myxa-lang/myxa/internal/merr"
	"github.com/myxa-lang/myxa/internal/model"
	"github.com/myxa-lang/myxa/internal/mver"
	"github.com/myxa-lang/myxa/internal/solve"
	"github.com/myxa-lang/myxa/internal/store"
)

// ManifestName is the filename a Package is read from and written to in a
// project directory, mirroring golang-dep's ManifestName constant.
const ManifestName = "package.json"

// Init creates a new Package at path/ManifestName. It fails with
// merr.AlreadyExists if a manifest is already present there.
func Init(path, name, description string) (*model.Package, error) {
	if err := model.ValidateName(name); err != nil {
		return nil, err
	}

	full := manifestPath(path)
	if _, err := os.Stat(full); err == nil {
		return nil, merr.User(merr.AlreadyExists, "%s already exists", full)
	} else if !os.IsNotExist(err) {
		return nil, merr.Wrapf(merr.IOFailure, err, "checking for existing manifest at %s", full)
	}

	pkg := model.New(name, description)

	f, err := os.Create(full)
	if err != nil {
		return nil, merr.Wrapf(merr.IOFailure, err, "creating %s", full)
	}
	defer f.Close()

	if err := store.WritePackage(f, pkg); err != nil {
		return nil, merr.Wrapf(merr.IOFailure, err, "writing %s", full)
	}
	return pkg, nil
}

// Load reads a Package from path/ManifestName.
func Load(path string) (*model.Package, error) {
	f, err := os.Open(manifestPath(path))
	if err != nil {
		return nil, merr.Wrapf(merr.IOFailure, err, "opening manifest")
	}
	defer f.Close()

	pkg, err := store.ReadPackage(f)
	if err != nil {
		return nil, merr.Wrapf(merr.IOFailure, err, "decoding manifest")
	}
	return pkg, nil
}

// Save writes pkg to path/ManifestName, overwriting any prior contents.
func Save(path string, pkg *model.Package) error {
	f, err := os.Create(manifestPath(path))
	if err != nil {
		return merr.Wrapf(merr.IOFailure, err, "writing manifest")
	}
	defer f.Close()

	if err := store.WritePackage(f, pkg); err != nil {
		return merr.Wrapf(merr.IOFailure, err, "encoding manifest")
	}
	return nil
}

func manifestPath(path string) string {
	if path == "" {
		return ManifestName
	}
	return path + string(os.PathSeparator) + ManifestName
}

// Add records a new direct dependency on depName. If version is nil, the
// latest published version in idx is used. It fails with
// merr.AlreadyDependency if depName is already a dependency at a different
// version than requested.
func Add(pkg *model.Package, depName string, idx *index.Index, version *mver.Version) error {
	var v mver.Version
	if version != nil {
		v = *version
	} else {
		latest, err := idx.GetLatest(depName)
		if err != nil {
			return err
		}
		v = latest.Info.Version
	}

	if existing, ok := pkg.Dependencies[depName]; ok {
		if existing.Version.Equal(v) {
			return nil
		}
		return merr.User(merr.AlreadyDependency, "%s is already a dependency at %s", depName, existing.Version)
	}

	pkg.Dependencies[depName] = model.Dependency{Name: depName, Version: v}
	return nil
}

// Remove deletes a direct dependency. It fails with merr.NotDependency if
// depName is not currently a dependency.
func Remove(pkg *model.Package, depName string) error {
	if _, ok := pkg.Dependencies[depName]; !ok {
		return merr.User(merr.NotDependency, "%s is not a dependency", depName)
	}
	delete(pkg.Dependencies, depName)
	return nil
}

// Lock runs the Solver over pkg's direct dependencies and idx, replacing
// pkg.Lock with the result. Update is an alias: both re-run the Solver from
// scratch, since myxa keeps no prior-lock bias (spec §4.6).
func Lock(pkg *model.Package, idx *index.Index) error {
	lock, err := solve.Solve(pkg, idx)
	if err != nil {
		return err
	}
	pkg.Lock = lock
	return nil
}

// Update re-solves pkg's lock against the current state of idx.
func Update(pkg *model.Package, idx *index.Index) error {
	return Lock(pkg, idx)
}

// Unlock clears pkg's lock. It fails with merr.NoLock if pkg has no lock.
func Unlock(pkg *model.Package) error {
	if pkg.Lock == nil {
		return merr.User(merr.NoLock, "%s has no lock", pkg.Info.Name)
	}
	pkg.Lock = nil
	return nil
}

// Check diffs pkg's Interface Model against a published reference: the
// version named by refVersion, or the latest published version if nil. It
// returns the full ordered change set, breaking and non-breaking alike.
func Check(pkg *model.Package, idx *index.Index, refVersion *mver.Version) ([]diff.Change, error) {
	var ref *model.Package
	var err error
	if refVersion != nil {
		ref, err = idx.Get(pkg.Info.Name, *refVersion)
	} else {
		ref, err = idx.GetLatest(pkg.Info.Name)
	}
	if err != nil {
		return nil, err
	}

	return diff.Diff(pkg.Info.Name, ref.Members, pkg.Members)
}

// Publish computes pkg's next version, writes it into pkg.Info.Version, and
// adds the result to idx. It requires a non-empty lock (merr.NoLock
// otherwise) and a valid name. If a prior version of pkg is already
// published, the Differ decides the version bump: any breaking change
// forces NextMajor, otherwise majorFlag selects between NextMajor and
// NextMinor. The first-ever publish of a name uses mver.Default.
//
// interactive is accepted for parity with the CLI surface of spec §6 (where
// a human may be prompted to confirm a major bump); the Lifecycle itself
// makes no prompting decision, leaving that to the caller.
func Publish(pkg *model.Package, idx *index.Index, interactive, majorFlag bool) error {
	if err := model.ValidateName(pkg.Info.Name); err != nil {
		return err
	}
	if pkg.Lock == nil || len(pkg.Lock.Pins) == 0 {
		return merr.User(merr.NoLock, "%s must be locked before publishing", pkg.Info.Name)
	}

	latest, err := idx.GetLatest(pkg.Info.Name)
	if err != nil {
		if !merr.Is(err, merr.NotFoundPackage) {
			return err
		}
		pkg.Info.Version = mver.Default()
		return idx.Add(pkg)
	}

	changes, err := diff.Diff(pkg.Info.Name, latest.Members, pkg.Members)
	if err != nil {
		return err
	}

	breaking := false
	for _, c := range changes {
		if c.IsBreaking() {
			breaking = true
			break
		}
	}

	switch {
	case breaking:
		pkg.Info.Version = latest.Info.Version.NextMajor()
	case majorFlag:
		pkg.Info.Version = latest.Info.Version.NextMajor()
	default:
		pkg.Info.Version = latest.Info.Version.NextMinor()
	}

	return idx.Add(pkg)
}

// Yank removes a published version of pkg from idx.
func Yank(pkg *model.Package, version mver.Version, idx *index.Index) error {
	return idx.Remove(pkg.Info.Name, version)
}
