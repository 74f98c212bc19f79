package diff

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myxa-lang/myxa/internal/iface"
)

func mathAddMembers(aType iface.Node) map[string]iface.Node {
	return map[string]iface.Node{
		"math": &iface.Mod{
			Name: "math",
			Members: map[string]iface.Node{
				"add": &iface.Func{
					Name: "add",
					Params: []*iface.Param{
						{Name: "a", Type: aType},
						{Name: "b", Type: iface.Int},
					},
					Return: iface.Int,
				},
			},
		},
	}
}

// S1 - no change.
func TestDiffReflexivity(t *testing.T) {
	m := mathAddMembers(iface.Int)
	changes, err := Diff("euler", m, m)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if len(changes) != 0 {
		t.Errorf("Diff(P,P) = %v, want []", changes)
	}
}

// S2 - param type change.
func TestDiffParamTypeChange(t *testing.T) {
	old := mathAddMembers(iface.Int)
	neu := mathAddMembers(iface.Float)

	changes, err := Diff("euler", old, neu)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("Diff = %v, want exactly 1 change", changes)
	}
	c := changes[0]
	if c.Kind != VarNodeChange {
		t.Errorf("Kind = %v, want VarNodeChange", c.Kind)
	}
	wantPath := []string{"euler", "math", "add", "a"}
	if !reflect.DeepEqual(c.Path, wantPath) {
		t.Errorf("Path = %v, want %v", c.Path, wantPath)
	}
	if c.OldVarNode != iface.Int {
		t.Errorf("OldVarNode = %v, want Int", c.OldVarNode)
	}
	if c.NewVarNode != iface.Float {
		t.Errorf("NewVarNode = %v, want Float", c.NewVarNode)
	}
	if !c.IsBreaking() {
		t.Error("IsBreaking() = false, want true")
	}
}

// S3 - enum variant removed.
func TestDiffEnumVariantRemoved(t *testing.T) {
	old := map[string]iface.Node{
		"Parity": &iface.Enum{
			Name: "Parity",
			Variants: map[string]*iface.Variant{
				"Odd":  {Name: "Odd", Type: iface.Null},
				"Even": {Name: "Even", Type: iface.Null},
			},
		},
	}
	neu := map[string]iface.Node{
		"Parity": &iface.Enum{
			Name: "Parity",
			Variants: map[string]*iface.Variant{
				"Even": {Name: "Even", Type: iface.Null},
			},
		},
	}

	changes, err := Diff("pkg", old, neu)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("Diff = %v, want exactly 1 change", changes)
	}
	c := changes[0]
	if c.Kind != Removal {
		t.Errorf("Kind = %v, want Removal", c.Kind)
	}
	wantPath := []string{"pkg", "Parity", "Odd"}
	if !reflect.DeepEqual(c.Path, wantPath) {
		t.Errorf("Path = %v, want %v", c.Path, wantPath)
	}
}

func TestAdditionNeverBreaking(t *testing.T) {
	old := map[string]iface.Node{}
	neu := map[string]iface.Node{
		"thing": &iface.Const{Name: "thing", Type: iface.Int},
	}
	changes, err := Diff("pkg", old, neu)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if len(changes) != 1 || changes[0].Kind != Addition {
		t.Fatalf("Diff = %v, want single Addition", changes)
	}
	if changes[0].IsBreaking() {
		t.Error("Addition.IsBreaking() = true, want false")
	}
}

// Universal invariant 3: addition/removal symmetry.
func TestAdditionRemovalSymmetry(t *testing.T) {
	old := mathAddMembers(iface.Int)
	neu := map[string]iface.Node{}

	forward, err := Diff("pkg", old, neu)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	backward, err := Diff("pkg", neu, old)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}

	if len(forward) != 1 || forward[0].Kind != Removal {
		t.Fatalf("forward = %v, want single Removal", forward)
	}
	if len(backward) != 1 || backward[0].Kind != Addition {
		t.Fatalf("backward = %v, want single Addition", backward)
	}
	if !cmp.Equal(forward[0].TreeNode, backward[0].TreeNode) {
		t.Errorf("removed node %v != added node %v", forward[0].TreeNode, backward[0].TreeNode)
	}
}

// Universal invariant 2: determinism / lexicographic path order.
func TestDiffDeterministicOrder(t *testing.T) {
	old := map[string]iface.Node{}
	neu := map[string]iface.Node{
		"zeta":  &iface.Const{Name: "zeta", Type: iface.Int},
		"alpha": &iface.Const{Name: "alpha", Type: iface.Int},
		"mu":    &iface.Const{Name: "mu", Type: iface.Int},
	}

	for i := 0; i < 5; i++ {
		changes, err := Diff("pkg", old, neu)
		if err != nil {
			t.Fatalf("Diff error: %v", err)
		}
		if len(changes) != 3 {
			t.Fatalf("len(changes) = %d, want 3", len(changes))
		}
		gotOrder := []string{changes[0].PathString(), changes[1].PathString(), changes[2].PathString()}
		want := []string{"pkg.alpha", "pkg.mu", "pkg.zeta"}
		if !reflect.DeepEqual(gotOrder, want) {
			t.Fatalf("run %d: order = %v, want %v", i, gotOrder, want)
		}
	}
}

func TestTreeNodeChangeOnKindFlip(t *testing.T) {
	old := map[string]iface.Node{
		"thing": &iface.Const{Name: "thing", Type: iface.Int},
	}
	neu := map[string]iface.Node{
		"thing": &iface.Func{Name: "thing", Return: iface.Int},
	}

	changes, err := Diff("pkg", old, neu)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if len(changes) != 1 || changes[0].Kind != TreeNodeChange {
		t.Fatalf("Diff = %v, want single TreeNodeChange", changes)
	}
	if !changes[0].IsBreaking() {
		t.Error("TreeNodeChange.IsBreaking() = false, want true")
	}
}

func TestInternalErrorOnMalformedPosition(t *testing.T) {
	// A Primitive in a declaration-only position (Mod.Members) violates
	// well-formedness and must surface as an InternalError, not a panic
	// or a silently-wrong diff.
	old := map[string]iface.Node{"x": iface.Int}
	neu := map[string]iface.Node{"x": iface.Int}

	if _, err := Diff("pkg", old, neu); err == nil {
		t.Error("Diff with primitive in declaration position succeeded, want InternalError")
	}
}

func TestStructFieldSetUnorderedEquality(t *testing.T) {
	s1 := &iface.Struct{Name: "Point", Fields: map[string]*iface.Field{
		"x": {Name: "x", Type: iface.Int},
		"y": {Name: "y", Type: iface.Int},
	}}
	s2 := &iface.Struct{Name: "Point", Fields: map[string]*iface.Field{
		"y": {Name: "y", Type: iface.Int},
		"x": {Name: "x", Type: iface.Int},
	}}
	if !iface.Equal(s1, s2) {
		t.Error("structurally identical structs with differently ordered fields compared unequal")
	}
}

func TestFuncParamOrderMatters(t *testing.T) {
	f1 := &iface.Func{Name: "sub", Params: []*iface.Param{
		{Name: "a", Type: iface.Int}, {Name: "b", Type: iface.Float},
	}, Return: iface.Int}
	f2 := &iface.Func{Name: "sub", Params: []*iface.Param{
		{Name: "b", Type: iface.Float}, {Name: "a", Type: iface.Int},
	}, Return: iface.Int}
	if iface.Equal(f1, f2) {
		t.Error("Funcs with swapped parameter order compared equal, want unequal")
	}
}

// Universal invariant 2, func case: a return-type change and a param-type
// change on the same Func must be emitted in lexicographic path order, with
// the owning Func's own path (a strict prefix of its params' paths) first.
func TestDiffOrderReturnBeforeParamOnSimultaneousChange(t *testing.T) {
	old := map[string]iface.Node{
		"add": &iface.Func{
			Name:   "add",
			Params: []*iface.Param{{Name: "a", Type: iface.Int}, {Name: "b", Type: iface.Int}},
			Return: iface.Int,
		},
	}
	neu := map[string]iface.Node{
		"add": &iface.Func{
			Name:   "add",
			Params: []*iface.Param{{Name: "a", Type: iface.Float}, {Name: "b", Type: iface.Int}},
			Return: iface.Str,
		},
	}

	changes, err := Diff("pkg", old, neu)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("Diff = %v, want exactly 2 changes", changes)
	}
	gotOrder := []string{changes[0].PathString(), changes[1].PathString()}
	want := []string{"pkg.add", "pkg.add.a"}
	if !reflect.DeepEqual(gotOrder, want) {
		t.Errorf("order = %v, want %v (pkg.add is a strict prefix of pkg.add.a and must come first)", gotOrder, want)
	}
}

func TestContainerVarNodeComparesByKindNotElement(t *testing.T) {
	old := map[string]iface.Node{
		"items": &iface.Const{Name: "items", Type: iface.List{Elem: iface.Int}},
	}
	neu := map[string]iface.Node{
		"items": &iface.Const{Name: "items", Type: iface.List{Elem: iface.Str}},
	}

	changes, err := Diff("pkg", old, neu)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if len(changes) != 0 {
		t.Fatalf("Diff = %v, want no changes (List stays List regardless of element type)", changes)
	}
}

func TestNestedStructFieldChangeSurfacesNotCollapsed(t *testing.T) {
	// A field whose type is itself a Struct surfaces fine-grained nested
	// changes rather than collapsing to a single VarNodeChange.
	inner := func(y iface.Node) *iface.Struct {
		return &iface.Struct{Name: "Point", Fields: map[string]*iface.Field{
			"x": {Name: "x", Type: iface.Int},
			"y": {Name: "y", Type: y},
		}}
	}
	old := map[string]iface.Node{
		"Shape": &iface.Struct{Name: "Shape", Fields: map[string]*iface.Field{
			"origin": {Name: "origin", Type: inner(iface.Int)},
		}},
	}
	neu := map[string]iface.Node{
		"Shape": &iface.Struct{Name: "Shape", Fields: map[string]*iface.Field{
			"origin": {Name: "origin", Type: inner(iface.Float)},
		}},
	}

	changes, err := Diff("pkg", old, neu)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("Diff = %v, want exactly 1 change", changes)
	}
	want := []string{"pkg", "Shape", "origin", "Point", "y"}
	if !reflect.DeepEqual(changes[0].Path, want) {
		t.Errorf("Path = %v, want %v", changes[0].Path, want)
	}
}
