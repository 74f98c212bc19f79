// Package model defines the shared data model of spec §3 — Package,
// Dependency, Lock, Pin — that sits between the Index (C3) and the
// Lifecycle (C6). It has no behaviour of its own beyond construction,
// validation, and deep-copying; the algorithmic cores (C4 Differ, C5
// Solver) consume it but do not mutate it.
package model

import (
	"regexp"
	"sort"

	"github.com/myxa-lang/myxa/internal/iface"
	"github.com/myxa-lang/myxa/internal/merr"
	"github.com/myxa-lang/myxa/internal/mver"
)

// nameRegex implements spec §3's identifier rule: lowercase letters and
// hyphens, not beginning or ending with a hyphen.
var nameRegex = regexp.MustCompile(`^[a-z]([a-z-]*[a-z])?$`)

// ValidateName reports a *merr.UserError of kind BadName if name does not
// satisfy the package identifier rule.
func ValidateName(name string) error {
	if !nameRegex.MatchString(name) {
		return merr.User(merr.BadName, "%q is not a valid package name: must be lowercase letters and hyphens, not starting or ending with a hyphen", name)
	}
	return nil
}

// Info holds a package's identity: name, version, and optional description.
type Info struct {
	Name        string
	Version     mver.Version
	Description string
}

// Dependency is a named requirement: the target package must publish some
// version satisfying Version under minor-compatibility.
type Dependency struct {
	Name    string
	Version mver.Version
}

// Pin is a single (name, version) selection in a Lock.
type Pin struct {
	Name    string
	Version mver.Version
}

// Lock is a satisfying assignment from each transitively required name to
// a specific version, plus bookkeeping recording which parent introduced
// each pin (used only for diagnostics; not required for well-formedness).
type Lock struct {
	Pins    map[string]Pin
	Parents map[string]string // pin name -> name of the package that introduced it
}

// NewLock returns an empty, initialised Lock.
func NewLock() *Lock {
	return &Lock{Pins: map[string]Pin{}, Parents: map[string]string{}}
}

// Clone deep-copies l.
func (l *Lock) Clone() *Lock {
	if l == nil {
		return nil
	}
	out := NewLock()
	for k, v := range l.Pins {
		out.Pins[k] = v
	}
	for k, v := range l.Parents {
		out.Parents[k] = v
	}
	return out
}

// Package is a full package: its identity, direct dependencies, optional
// lock, and the root of its Interface Model.
type Package struct {
	Info         Info
	Dependencies map[string]Dependency
	Lock         *Lock
	Members      map[string]iface.Node
}

// New returns a Package at the default version with no dependencies, no
// lock, and an empty Interface Model.
func New(name, description string) *Package {
	return &Package{
		Info: Info{
			Name:        name,
			Version:     mver.Default(),
			Description: description,
		},
		Dependencies: map[string]Dependency{},
		Members:      map[string]iface.Node{},
	}
}

// Clone deep-copies p, including its Interface Model. The Index calls this
// on every insertion so that later mutation of an author's in-memory
// package cannot retroactively change a published snapshot.
func (p *Package) Clone() *Package {
	deps := make(map[string]Dependency, len(p.Dependencies))
	for k, v := range p.Dependencies {
		deps[k] = v
	}
	return &Package{
		Info:         p.Info,
		Dependencies: deps,
		Lock:         p.Lock.Clone(),
		Members:      iface.CloneMembers(p.Members),
	}
}

// SortedDependencyNames returns the dependency names in the textual
// (insertion-independent, lexicographic) order the spec requires wherever
// dependency order is observable.
func (p *Package) SortedDependencyNames() []string {
	names := make([]string, 0, len(p.Dependencies))
	for n := range p.Dependencies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
