package iface

// Equal reports structural equality of two var-nodes, per the rules of
// spec §4.2: primitives compare by kind; Struct compares by field set
// (unordered, pairwise-equal var-nodes); Enum likewise by variant set;
// Func compares by positional parameter list and return type.
//
// Equal does not distinguish declaration identity (e.g. two distinct
// Struct values with the same name and fields are equal) because var-diff
// treats structurally identical types as interchangeable.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case Primitive:
		return true // kind equality already checked
	case Maybe:
		return Equal(av.Elem, b.(Maybe).Elem)
	case List:
		return Equal(av.Elem, b.(List).Elem)
	case Set:
		return Equal(av.Elem, b.(Set).Elem)
	case Dict:
		bv := b.(Dict)
		return Equal(av.Key, bv.Key) && Equal(av.Val, bv.Val)
	case Tuple:
		bv := b.(Tuple)
		if len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *Struct:
		bv := b.(*Struct)
		if len(av.Fields) != len(bv.Fields) {
			return false
		}
		for name, fa := range av.Fields {
			fb, ok := bv.Fields[name]
			if !ok || !Equal(fa.Type, fb.Type) {
				return false
			}
		}
		return true
	case *Enum:
		bv := b.(*Enum)
		if len(av.Variants) != len(bv.Variants) {
			return false
		}
		for name, va := range av.Variants {
			vb, ok := bv.Variants[name]
			if !ok || !Equal(va.Type, vb.Type) {
				return false
			}
		}
		return true
	case *Func:
		bv := b.(*Func)
		if len(av.Params) != len(bv.Params) {
			return false
		}
		for i := range av.Params {
			if av.Params[i].Name != bv.Params[i].Name {
				return false
			}
			if !Equal(av.Params[i].Type, bv.Params[i].Type) {
				return false
			}
		}
		return Equal(av.Return, bv.Return)
	default:
		// Declaration-only kinds (Mod, Const, Field, Variant, Param)
		// reaching here means a caller placed a non-var-node in a
		// var-node position; Equal is only meaningful for var-nodes.
		return false
	}
}
