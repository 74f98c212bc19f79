package iface

// Clone deep-copies a node. The Index relies on this at every insertion so
// that later mutation of an author's in-memory package cannot retroactively
// change a published snapshot (spec §3, invariant ii).
func Clone(n Node) Node {
	switch v := n.(type) {
	case nil:
		return nil
	case Primitive:
		return v
	case Maybe:
		return Maybe{Elem: Clone(v.Elem)}
	case List:
		return List{Elem: Clone(v.Elem)}
	case Set:
		return Set{Elem: Clone(v.Elem)}
	case Dict:
		return Dict{Key: Clone(v.Key), Val: Clone(v.Val)}
	case Tuple:
		elems := make([]Node, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = Clone(e)
		}
		return Tuple{Elems: elems}
	case *Mod:
		members := make(map[string]Node, len(v.Members))
		for k, m := range v.Members {
			members[k] = Clone(m)
		}
		return &Mod{Name: v.Name, Members: members}
	case *Struct:
		fields := make(map[string]*Field, len(v.Fields))
		for k, f := range v.Fields {
			fields[k] = Clone(f).(*Field)
		}
		return &Struct{Name: v.Name, Fields: fields}
	case *Enum:
		variants := make(map[string]*Variant, len(v.Variants))
		for k, va := range v.Variants {
			variants[k] = Clone(va).(*Variant)
		}
		return &Enum{Name: v.Name, Variants: variants}
	case *Func:
		params := make([]*Param, len(v.Params))
		for i, p := range v.Params {
			params[i] = Clone(p).(*Param)
		}
		return &Func{Name: v.Name, Params: params, Return: Clone(v.Return)}
	case *Const:
		return &Const{Name: v.Name, Type: Clone(v.Type)}
	case *Field:
		return &Field{Name: v.Name, Type: Clone(v.Type)}
	case *Variant:
		return &Variant{Name: v.Name, Type: Clone(v.Type)}
	case *Param:
		return &Param{Name: v.Name, Type: Clone(v.Type)}
	default:
		return n
	}
}

// CloneMembers deep-copies a member mapping, as used for a Mod's or
// Package's top-level Members.
func CloneMembers(members map[string]Node) map[string]Node {
	out := make(map[string]Node, len(members))
	for k, v := range members {
		out[k] = Clone(v)
	}
	return out
}
