// Package diff implements myxa's Interface Differ / Compatibility Checker
// (spec component C4): the structural diff over two Interface Models that
// classifies every change as breaking or non-breaking.
//
// The algorithm is a deterministic, lexicographic tree walk with no
// backtracking; its only state is the accumulated Change slice, mirroring
// how golang-dep's own constraint-intersection code (satisfy.go) builds up
// a result by walking sorted keys rather than ranging a map directly.
package diff

import (
	"sort"
	"strings"

	"github.com/myxa-lang/myxa/internal/iface"
	"github.com/myxa-lang/myxa/internal/merr"
)

// Kind discriminates the four Change variants of spec §4.4.
type Kind string

const (
	Addition       Kind = "addition"
	Removal        Kind = "removal"
	VarNodeChange  Kind = "var_node_change"
	TreeNodeChange Kind = "tree_node_change"
)

// Change records one structural difference between two Interface Models,
// at a dotted path starting with the package name.
type Change struct {
	Kind Kind
	Path []string

	// TreeNode is set for Addition (the new node), Removal (the missing
	// node), and VarNodeChange (the declaration owning the changed type).
	TreeNode iface.Node

	// OldVarNode, NewVarNode are set for VarNodeChange.
	OldVarNode, NewVarNode iface.Node

	// OldTreeNode, NewTreeNode are set for TreeNodeChange.
	OldTreeNode, NewTreeNode iface.Node
}

// IsBreaking reports whether c is breaking: every variant except Addition.
func (c Change) IsBreaking() bool { return c.Kind != Addition }

// PathString renders Path as a dotted string, e.g. "euler.math.add.a".
func (c Change) PathString() string { return strings.Join(c.Path, ".") }

// compositeDeclKinds are the var-node kinds that are also declarations:
// when two var-nodes share one of these kinds, var-diff recurses into the
// declaration rather than comparing structurally in one shot.
var compositeDeclKinds = map[iface.Kind]bool{
	iface.KindStruct: true,
	iface.KindEnum:   true,
	iface.KindFunc:   true,
}

// Diff compares the member mappings of two packages sharing pkgName and
// returns the complete, ordered sequence of changes. The result is
// deterministic: for a given (old, new) pair it is always produced in
// lexicographic path order.
func Diff(pkgName string, oldMembers, newMembers map[string]iface.Node) ([]Change, error) {
	return diffMembers([]string{pkgName}, oldMembers, newMembers)
}

func sortedUnion(a, b map[string]iface.Node) []string {
	seen := make(map[string]bool, len(a)+len(b))
	names := make([]string, 0, len(a)+len(b))
	for n := range a {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for n := range b {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

func subPath(path []string, n string) []string {
	sub := make([]string, len(path)+1)
	copy(sub, path)
	sub[len(path)] = n
	return sub
}

// diffMembers implements step 1-2 of the §4.4 algorithm over one named
// child mapping at path p.
func diffMembers(path []string, mOld, mNew map[string]iface.Node) ([]Change, error) {
	var changes []Change
	for _, n := range sortedUnion(mOld, mNew) {
		sub := subPath(path, n)
		oldNode, inOld := mOld[n]
		newNode, inNew := mNew[n]

		switch {
		case inOld && inNew:
			if !iface.IsTreeNode(oldNode) {
				return nil, merr.Internal("non-declaration node %q (%v) at declaration position %s", n, oldNode.Kind(), strings.Join(sub, "."))
			}
			if !iface.IsTreeNode(newNode) {
				return nil, merr.Internal("non-declaration node %q (%v) at declaration position %s", n, newNode.Kind(), strings.Join(sub, "."))
			}

			if oldNode.Kind() == newNode.Kind() {
				cs, err := diffDeclPair(sub, oldNode, newNode)
				if err != nil {
					return nil, err
				}
				changes = append(changes, cs...)
			} else {
				changes = append(changes, Change{
					Kind:        TreeNodeChange,
					Path:        sub,
					OldTreeNode: oldNode,
					NewTreeNode: newNode,
				})
			}
		case inOld:
			changes = append(changes, Change{Kind: Removal, Path: sub, TreeNode: oldNode})
		case inNew:
			changes = append(changes, Change{Kind: Addition, Path: sub, TreeNode: newNode})
		}
	}
	return changes, nil
}

// diffDeclPair handles two declarations of the same kind at the same path:
// it var-diffs their bound type (if any) and recurses into their child
// mapping (if any), per the "for leaves that bind a var-node" clause of
// §4.4. The bound-type diff runs before the children recursion so that a
// Func's own path (e.g. pkg.add) precedes its params' paths (pkg.add.a) in
// the emitted order, matching the lexicographic ordering guarantee of §4.4
// and §8: a path is always emitted before any path it is a strict prefix
// of.
func diffDeclPair(path []string, oldNode, newNode iface.Node) ([]Change, error) {
	var changes []Change

	if typeOld, ok := iface.BoundType(oldNode); ok {
		typeNew, _ := iface.BoundType(newNode)
		cs, err := varDiff(path, newNode, typeOld, typeNew)
		if err != nil {
			return nil, err
		}
		changes = append(changes, cs...)
	}

	if childrenOld, ok := iface.Children(oldNode); ok {
		childrenNew, _ := iface.Children(newNode)
		cs, err := diffMembers(path, childrenOld, childrenNew)
		if err != nil {
			return nil, err
		}
		changes = append(changes, cs...)
	}

	return changes, nil
}

// varDiff implements the var-diff rule of §4.4. For composite declaration
// kinds (Struct, Enum, Func) sharing a kind, it recurses as a declaration
// pair. Otherwise it compares by node kind alone: a container var-node
// (Maybe, List, Set, Dict, Tuple) is unchanged so long as its own kind is
// unchanged, regardless of its element types, matching checker.py's
// node_type-only comparison for non-declaration var-nodes.
func varDiff(path []string, owner iface.Node, varOld, varNew iface.Node) ([]Change, error) {
	if !iface.IsVarNode(varOld) {
		return nil, merr.Internal("non-var-node %v at type position %s", varOld.Kind(), strings.Join(path, "."))
	}
	if !iface.IsVarNode(varNew) {
		return nil, merr.Internal("non-var-node %v at type position %s", varNew.Kind(), strings.Join(path, "."))
	}

	if varOld.Kind() == varNew.Kind() && compositeDeclKinds[varOld.Kind()] {
		name := iface.Name(varNew)
		return diffDeclPair(subPath(path, name), varOld, varNew)
	}

	if varOld.Kind() == varNew.Kind() {
		return nil, nil
	}

	return []Change{{
		Kind:       VarNodeChange,
		Path:       path,
		TreeNode:   owner,
		OldVarNode: varOld,
		NewVarNode: varNew,
	}}, nil
}
