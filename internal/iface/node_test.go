package iface

import "testing"

func TestCategoryPredicates(t *testing.T) {
	tests := []struct {
		name       string
		n          Node
		wantVar    bool
		wantTree   bool
		wantMember bool
	}{
		{"bool", Bool, true, false, false},
		{"maybe-int", Maybe{Elem: Int}, true, false, false},
		{"struct", &Struct{Name: "Point"}, true, true, true},
		{"enum", &Enum{Name: "Parity"}, true, true, true},
		{"func", &Func{Name: "add"}, true, true, true},
		{"const", &Const{Name: "pi", Type: Float}, false, true, true},
		{"field", &Field{Name: "x", Type: Int}, false, true, false},
		{"variant", &Variant{Name: "Odd", Type: Null}, false, true, false},
		{"param", &Param{Name: "a", Type: Int}, false, true, false},
		{"mod", &Mod{Name: "math"}, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVarNode(tt.n); got != tt.wantVar {
				t.Errorf("IsVarNode(%s) = %v, want %v", tt.name, got, tt.wantVar)
			}
			if got := IsTreeNode(tt.n); got != tt.wantTree {
				t.Errorf("IsTreeNode(%s) = %v, want %v", tt.name, got, tt.wantTree)
			}
			if got := IsMemberNode(tt.n); got != tt.wantMember {
				t.Errorf("IsMemberNode(%s) = %v, want %v", tt.name, got, tt.wantMember)
			}
		})
	}
}

func TestChildrenAndBoundType(t *testing.T) {
	fn := &Func{
		Name:   "add",
		Params: []*Param{{Name: "a", Type: Int}, {Name: "b", Type: Int}},
		Return: Int,
	}

	children, ok := Children(fn)
	if !ok {
		t.Fatal("Children(func) ok = false, want true")
	}
	if len(children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(children))
	}
	if _, ok := children["a"]; !ok {
		t.Error(`children["a"] missing`)
	}

	ret, ok := BoundType(fn)
	if !ok || ret != Int {
		t.Errorf("BoundType(func) = %v, %v, want Int, true", ret, ok)
	}

	if _, ok := Children(Int); ok {
		t.Error("Children(primitive) ok = true, want false")
	}
	if _, ok := BoundType(&Struct{}); ok {
		t.Error("BoundType(struct) ok = true, want false")
	}
}

func TestNameReturnsDeclaredIdentifier(t *testing.T) {
	if got := Name(&Struct{Name: "Point"}); got != "Point" {
		t.Errorf("Name(struct) = %q, want Point", got)
	}
	if got := Name(Int); got != "" {
		t.Errorf("Name(primitive) = %q, want empty", got)
	}
}

func TestEqualPrimitives(t *testing.T) {
	if !Equal(Int, Int) {
		t.Error("Equal(Int, Int) = false")
	}
	if Equal(Int, Float) {
		t.Error("Equal(Int, Float) = true")
	}
}

func TestEqualStructIsUnorderedBySet(t *testing.T) {
	a := &Struct{Name: "Point", Fields: map[string]*Field{
		"x": {Name: "x", Type: Float},
		"y": {Name: "y", Type: Float},
	}}
	b := &Struct{Name: "Point", Fields: map[string]*Field{
		"y": {Name: "y", Type: Float},
		"x": {Name: "x", Type: Float},
	}}
	if !Equal(a, b) {
		t.Error("Equal(a, b) = false, want true (field order should not matter)")
	}

	c := &Struct{Name: "Point", Fields: map[string]*Field{
		"x": {Name: "x", Type: Int},
		"y": {Name: "y", Type: Float},
	}}
	if Equal(a, c) {
		t.Error("Equal(a, c) = true, want false (field type differs)")
	}
}

func TestEqualFuncIsPositional(t *testing.T) {
	a := &Func{Params: []*Param{{Name: "a", Type: Int}, {Name: "b", Type: Str}}, Return: Null}
	b := &Func{Params: []*Param{{Name: "b", Type: Str}, {Name: "a", Type: Int}}, Return: Null}
	if Equal(a, b) {
		t.Error("Equal(a, b) = true, want false (param order matters for Func)")
	}

	c := &Func{Params: []*Param{{Name: "a", Type: Int}, {Name: "b", Type: Str}}, Return: Null}
	if !Equal(a, c) {
		t.Error("Equal(a, c) = false, want true (identical positional params)")
	}
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	orig := &Struct{Name: "Point", Fields: map[string]*Field{
		"x": {Name: "x", Type: Float},
	}}

	cloned := Clone(orig).(*Struct)
	if !Equal(orig, cloned) {
		t.Fatal("clone is not structurally equal to original")
	}

	cloned.Fields["x"].Type = Int
	if orig.Fields["x"].Type != Float {
		t.Error("mutating the clone's field type affected the original")
	}

	cloned.Fields["y"] = &Field{Name: "y", Type: Int}
	if _, ok := orig.Fields["y"]; ok {
		t.Error("adding a field to the clone affected the original")
	}
}

func TestCloneNil(t *testing.T) {
	if Clone(nil) != nil {
		t.Error("Clone(nil) != nil")
	}
}

func TestCloneMembers(t *testing.T) {
	members := map[string]Node{
		"add": &Func{Name: "add", Return: Int},
	}
	cloned := CloneMembers(members)

	fn := cloned["add"].(*Func)
	fn.Name = "sub"
	if members["add"].(*Func).Name != "add" {
		t.Error("mutating a cloned member affected the original map")
	}
}
