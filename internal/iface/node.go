// Package iface implements myxa's Interface Model: the typed tree of
// declarations that constitutes a package's public surface. Every node
// category is a closed sum, in the tagged-union style golang-dep uses for
// its own constraint and version types, so that exhaustive switches over
// Kind are the primary correctness device for consumers like the differ.
package iface

// Kind discriminates every node in the Interface Model. It is the
// node_type tag used on the wire (see internal/store).
type Kind string

const (
	KindBool  Kind = "bool"
	KindInt   Kind = "int"
	KindFloat Kind = "float"
	KindStr   Kind = "str"
	KindNull  Kind = "null"

	KindMaybe Kind = "maybe"
	KindList  Kind = "list"
	KindSet   Kind = "set"
	KindDict  Kind = "dict"
	KindTuple Kind = "tuple"

	KindMod    Kind = "mod"
	KindStruct Kind = "struct"
	KindEnum   Kind = "enum"
	KindFunc   Kind = "func"
	KindConst  Kind = "const"

	KindField   Kind = "field"
	KindVariant Kind = "variant"
	KindParam   Kind = "param"
)

// Node is the supertype of every Interface Model node. Concrete types
// implement it by reporting their Kind; callers dispatch with a type switch
// or one of the category predicates below (IsVarNode, IsTreeNode,
// IsMemberNode).
type Node interface {
	Kind() Kind
}

// primitiveKinds are the zero-arity var-node kinds.
var primitiveKinds = map[Kind]bool{
	KindBool: true, KindInt: true, KindFloat: true, KindStr: true, KindNull: true,
}

// compositeVarKinds are var-node kinds that wrap other nodes, plus the three
// declaration kinds usable by value (Struct, Enum, Func).
var compositeVarKinds = map[Kind]bool{
	KindMaybe: true, KindList: true, KindSet: true, KindDict: true, KindTuple: true,
	KindStruct: true, KindEnum: true, KindFunc: true,
}

var treeNodeKinds = map[Kind]bool{
	KindMod: true, KindStruct: true, KindEnum: true, KindFunc: true, KindConst: true,
	KindField: true, KindVariant: true, KindParam: true,
}

var memberNodeKinds = map[Kind]bool{
	KindMod: true, KindStruct: true, KindEnum: true, KindFunc: true, KindConst: true,
}

// IsVarNode reports whether n is admissible wherever a type is expected.
func IsVarNode(n Node) bool {
	k := n.Kind()
	return primitiveKinds[k] || compositeVarKinds[k]
}

// IsTreeNode reports whether n is addressable by a dotted path.
func IsTreeNode(n Node) bool { return treeNodeKinds[n.Kind()] }

// IsMemberNode reports whether n is admissible as a direct child of a Mod.
func IsMemberNode(n Node) bool { return memberNodeKinds[n.Kind()] }

// Primitive is a zero-arity var-node: Bool, Int, Float, Str, or Null.
type Primitive struct {
	K Kind
}

func (p Primitive) Kind() Kind { return p.K }

var (
	Bool  = Primitive{K: KindBool}
	Int   = Primitive{K: KindInt}
	Float = Primitive{K: KindFloat}
	Str   = Primitive{K: KindStr}
	Null  = Primitive{K: KindNull}
)

// Maybe represents an optional value of Elem.
type Maybe struct{ Elem Node }

func (Maybe) Kind() Kind { return KindMaybe }

// List represents a sequence of Elem.
type List struct{ Elem Node }

func (List) Kind() Kind { return KindList }

// Set represents an unordered collection of unique Elem.
type Set struct{ Elem Node }

func (Set) Kind() Kind { return KindSet }

// Dict represents a mapping from Key to Val.
type Dict struct{ Key, Val Node }

func (Dict) Kind() Kind { return KindDict }

// Tuple represents a fixed-length heterogeneous sequence.
type Tuple struct{ Elems []Node }

func (Tuple) Kind() Kind { return KindTuple }

// Mod is a module: a named container of member declarations.
type Mod struct {
	Name    string
	Members map[string]Node // MemberNode values: Mod|Struct|Enum|Func|Const
}

func (*Mod) Kind() Kind { return KindMod }

// Struct is both a tree-node (declaration, addressable by path) and a
// var-node (usable by value wherever a type is expected).
type Struct struct {
	Name   string
	Fields map[string]*Field
}

func (*Struct) Kind() Kind { return KindStruct }

// Enum is both a tree-node and a var-node.
type Enum struct {
	Name     string
	Variants map[string]*Variant
}

func (*Enum) Kind() Kind { return KindEnum }

// Func is both a tree-node and a var-node. Params is positional: parameter
// order is significant for structural equality, unlike Struct fields or
// Enum variants, which are unordered sets.
type Func struct {
	Name   string
	Params []*Param
	Return Node
}

func (*Func) Kind() Kind { return KindFunc }

// paramsByName indexes Params for the declaration-walk, which dispatches by
// name rather than position.
func (f *Func) paramsByName() map[string]Node {
	m := make(map[string]Node, len(f.Params))
	for _, p := range f.Params {
		m[p.Name] = p
	}
	return m
}

// Const is a module-level named constant binding a var-node type.
type Const struct {
	Name string
	Type Node
}

func (*Const) Kind() Kind { return KindConst }

// Field is a Struct member binding a var-node type.
type Field struct {
	Name string
	Type Node
}

func (*Field) Kind() Kind { return KindField }

// Variant is an Enum member binding a var-node payload type (Null for a
// unit variant, e.g. enum Parity { Odd(Null), Even(Null) }).
type Variant struct {
	Name string
	Type Node
}

func (*Variant) Kind() Kind { return KindVariant }

// Param is a Func parameter binding a var-node type.
type Param struct {
	Name string
	Type Node
}

func (*Param) Kind() Kind { return KindParam }

// Children returns n's named child mapping, if n is a container
// declaration (Mod, Struct, Enum, Func). Leaf declarations (Const, Field,
// Variant, Param) and var-nodes return ok=false.
func Children(n Node) (children map[string]Node, ok bool) {
	switch v := n.(type) {
	case *Mod:
		return v.Members, true
	case *Struct:
		m := make(map[string]Node, len(v.Fields))
		for k, f := range v.Fields {
			m[k] = f
		}
		return m, true
	case *Enum:
		m := make(map[string]Node, len(v.Variants))
		for k, va := range v.Variants {
			m[k] = va
		}
		return m, true
	case *Func:
		return v.paramsByName(), true
	default:
		return nil, false
	}
}

// BoundType returns the var-node type bound by n, if n is one of the
// type-bearing leaf declarations (Const, Field, Variant, Param) or the
// implicit Func.Return binding.
func BoundType(n Node) (Node, bool) {
	switch v := n.(type) {
	case *Const:
		return v.Type, true
	case *Field:
		return v.Type, true
	case *Variant:
		return v.Type, true
	case *Param:
		return v.Type, true
	case *Func:
		return v.Return, true
	default:
		return nil, false
	}
}

// Name returns the declared identifier of a tree-node, or "" for var-nodes
// that carry no name of their own.
func Name(n Node) string {
	switch v := n.(type) {
	case *Mod:
		return v.Name
	case *Struct:
		return v.Name
	case *Enum:
		return v.Name
	case *Func:
		return v.Name
	case *Const:
		return v.Name
	case *Field:
		return v.Name
	case *Variant:
		return v.Name
	case *Param:
		return v.Name
	default:
		return ""
	}
}
