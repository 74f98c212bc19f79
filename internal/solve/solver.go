// Package solve implements myxa's Version Solver (spec component C5): a
// backtracking search over an Index that produces a Lock satisfying every
// transitive dependency requirement under minor-compatible semantics.
//
// The search is intentionally unmemoised backtracking DFS, grounded on the
// same "commit and unwind" shape as golang-dep's own solver.go, scaled down
// to myxa's simpler single-requirement-per-edge model (no source
// overrides, no branch/revision constraints — only minor-compatible
// version ranges).
package solve

import (
	"github.com/myxa-lang/myxa/internal/index"
	"github.com/myxa-lang/myxa/internal/merr"
	"github.com/myxa-lang/myxa/internal/model"
	"github.com/myxa-lang/myxa/internal/mver"
)

// workItem pairs a dependency requirement with the name of the package
// that introduced it, for diagnostics and for the root-cycle rule.
type workItem struct {
	parent string
	req    model.Dependency
}

// Solve produces a Lock whose pin set exactly covers the transitive
// closure of root's dependencies under minor-compatibility, or fails with
// a *merr.UserError of kind NoSolution. A missing direct dependency
// reference fails fast with kind NotFound(dependency) rather than
// surfacing as NoSolution.
func Solve(root *model.Package, idx *index.Index) (*model.Lock, error) {
	for _, name := range root.SortedDependencyNames() {
		dep := root.Dependencies[name]
		if !idx.Has(dep.Name, dep.Version) {
			return nil, merr.User(merr.NotFoundDependency, "%s %s: no such published version in the index", dep.Name, dep.Version)
		}
	}

	worklist := directRequirements(root)
	lock := model.NewLock()

	ok, err := solveStep(root.Info.Name, root.Info.Version, worklist, lock, idx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, merr.User(merr.NoSolution, "no set of package versions satisfies every dependency constraint")
	}
	return lock, nil
}

func directRequirements(pkg *model.Package) []workItem {
	items := make([]workItem, 0, len(pkg.Dependencies))
	for _, name := range pkg.SortedDependencyNames() {
		items = append(items, workItem{parent: pkg.Info.Name, req: pkg.Dependencies[name]})
	}
	return items
}

// solveStep implements the §4.5 algorithm: pop one (parent, req) pair,
// dispatch on whether it names the root, an already-pinned package, or an
// unpinned one, and recurse. It returns false (not an error) for ordinary
// constraint failures that should cause backtracking; it returns an error
// only for conditions the pre-check should have already excluded.
func solveStep(rootName string, rootVersion mver.Version, worklist []workItem, lock *model.Lock, idx *index.Index) (bool, error) {
	if len(worklist) == 0 {
		return true, nil
	}

	item := worklist[0]
	rest := worklist[1:]
	req := item.req

	// Cycle handling: a dependency edge back to the root is always
	// considered satisfied, and is never descended into or pinned.
	if req.Name == rootName {
		return solveStep(rootName, rootVersion, rest, lock, idx)
	}

	if pinned, ok := lock.Pins[req.Name]; ok {
		if pinned.Version.Satisfies(req.Version) {
			return solveStep(rootName, rootVersion, rest, lock, idx)
		}
		return false, nil
	}

	versions, err := idx.ListVersionsSorted(req.Name)
	if err != nil {
		// A transitive dependency names a package absent from the index
		// entirely; this branch simply cannot be satisfied.
		return false, nil
	}

	for _, v := range versions {
		if !v.Satisfies(req.Version) {
			continue
		}

		q, err := idx.Get(req.Name, v)
		if err != nil {
			return false, err
		}

		lock.Pins[req.Name] = model.Pin{Name: req.Name, Version: v}
		lock.Parents[req.Name] = item.parent

		extended := make([]workItem, 0, len(rest)+len(q.Dependencies))
		extended = append(extended, rest...)
		extended = append(extended, directRequirements(q)...)

		ok, err := solveStep(rootName, rootVersion, extended, lock, idx)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}

		delete(lock.Pins, req.Name)
		delete(lock.Parents, req.Name)
	}

	return false, nil
}
