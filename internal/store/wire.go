// Package store implements myxa's on-disk JSON persistence (spec component
// C7): package.json and index.json, per spec §6.
//
// Grounded on golang-dep's manifest.go/lock.go, every public type has a
// raw/wire counterpart carrying json tags; translation between the two is
// total for well-formed values, which is what makes the load(save(x)) = x
// round-trip property (spec §8, invariant 7) hold. The one field left out
// is Lock.Parents, which is not persisted and so does not survive it.
package store

import (
	"fmt"

	"github.com/myxa-lang/myxa/internal/iface"
	"github.com/myxa-lang/myxa/internal/merr"
)

// wireNode is the recursive tagged-union wire form of an Interface Model
// node. Every node carries a node_type discriminator (spec §6); the
// remaining fields are populated according to which kind node_type names.
type wireNode struct {
	NodeType string `json:"node_type"`
	Name     string `json:"name,omitempty"`

	Elem *wireNode `json:"elem,omitempty"` // Maybe, List, Set
	Key  *wireNode `json:"key,omitempty"`  // Dict
	Val  *wireNode `json:"val,omitempty"`  // Dict

	Elems []*wireNode `json:"elems,omitempty"` // Tuple

	Members  map[string]*wireNode `json:"members,omitempty"`  // Mod
	Fields   map[string]*wireNode `json:"fields,omitempty"`   // Struct
	Variants map[string]*wireNode `json:"variants,omitempty"` // Enum

	Params []*wireNode `json:"params,omitempty"` // Func
	Return *wireNode   `json:"return,omitempty"` // Func

	Type *wireNode `json:"type,omitempty"` // Const, Field, Variant, Param
}

// encodeNode translates an Interface Model node into its wire form.
func encodeNode(n iface.Node) (*wireNode, error) {
	if n == nil {
		return nil, nil
	}

	switch v := n.(type) {
	case iface.Primitive:
		return &wireNode{NodeType: string(v.K)}, nil

	case iface.Maybe:
		elem, err := encodeNode(v.Elem)
		if err != nil {
			return nil, err
		}
		return &wireNode{NodeType: string(iface.KindMaybe), Elem: elem}, nil

	case iface.List:
		elem, err := encodeNode(v.Elem)
		if err != nil {
			return nil, err
		}
		return &wireNode{NodeType: string(iface.KindList), Elem: elem}, nil

	case iface.Set:
		elem, err := encodeNode(v.Elem)
		if err != nil {
			return nil, err
		}
		return &wireNode{NodeType: string(iface.KindSet), Elem: elem}, nil

	case iface.Dict:
		key, err := encodeNode(v.Key)
		if err != nil {
			return nil, err
		}
		val, err := encodeNode(v.Val)
		if err != nil {
			return nil, err
		}
		return &wireNode{NodeType: string(iface.KindDict), Key: key, Val: val}, nil

	case iface.Tuple:
		elems := make([]*wireNode, len(v.Elems))
		for i, e := range v.Elems {
			we, err := encodeNode(e)
			if err != nil {
				return nil, err
			}
			elems[i] = we
		}
		return &wireNode{NodeType: string(iface.KindTuple), Elems: elems}, nil

	case *iface.Mod:
		members := make(map[string]*wireNode, len(v.Members))
		for k, m := range v.Members {
			wm, err := encodeNode(m)
			if err != nil {
				return nil, err
			}
			members[k] = wm
		}
		return &wireNode{NodeType: string(iface.KindMod), Name: v.Name, Members: members}, nil

	case *iface.Struct:
		fields := make(map[string]*wireNode, len(v.Fields))
		for k, f := range v.Fields {
			wf, err := encodeNode(f)
			if err != nil {
				return nil, err
			}
			fields[k] = wf
		}
		return &wireNode{NodeType: string(iface.KindStruct), Name: v.Name, Fields: fields}, nil

	case *iface.Enum:
		variants := make(map[string]*wireNode, len(v.Variants))
		for k, va := range v.Variants {
			wv, err := encodeNode(va)
			if err != nil {
				return nil, err
			}
			variants[k] = wv
		}
		return &wireNode{NodeType: string(iface.KindEnum), Name: v.Name, Variants: variants}, nil

	case *iface.Func:
		params := make([]*wireNode, len(v.Params))
		for i, p := range v.Params {
			wp, err := encodeNode(p)
			if err != nil {
				return nil, err
			}
			params[i] = wp
		}
		ret, err := encodeNode(v.Return)
		if err != nil {
			return nil, err
		}
		return &wireNode{NodeType: string(iface.KindFunc), Name: v.Name, Params: params, Return: ret}, nil

	case *iface.Const:
		t, err := encodeNode(v.Type)
		if err != nil {
			return nil, err
		}
		return &wireNode{NodeType: string(iface.KindConst), Name: v.Name, Type: t}, nil

	case *iface.Field:
		t, err := encodeNode(v.Type)
		if err != nil {
			return nil, err
		}
		return &wireNode{NodeType: string(iface.KindField), Name: v.Name, Type: t}, nil

	case *iface.Variant:
		t, err := encodeNode(v.Type)
		if err != nil {
			return nil, err
		}
		return &wireNode{NodeType: string(iface.KindVariant), Name: v.Name, Type: t}, nil

	case *iface.Param:
		t, err := encodeNode(v.Type)
		if err != nil {
			return nil, err
		}
		return &wireNode{NodeType: string(iface.KindParam), Name: v.Name, Type: t}, nil

	default:
		return nil, merr.Internal("store: unrecognised node type %T", n)
	}
}

// decodeNode translates a wire node back into an Interface Model node.
func decodeNode(w *wireNode) (iface.Node, error) {
	if w == nil {
		return nil, nil
	}

	switch iface.Kind(w.NodeType) {
	case iface.KindBool:
		return iface.Bool, nil
	case iface.KindInt:
		return iface.Int, nil
	case iface.KindFloat:
		return iface.Float, nil
	case iface.KindStr:
		return iface.Str, nil
	case iface.KindNull:
		return iface.Null, nil

	case iface.KindMaybe:
		elem, err := decodeNode(w.Elem)
		if err != nil {
			return nil, err
		}
		return iface.Maybe{Elem: elem}, nil

	case iface.KindList:
		elem, err := decodeNode(w.Elem)
		if err != nil {
			return nil, err
		}
		return iface.List{Elem: elem}, nil

	case iface.KindSet:
		elem, err := decodeNode(w.Elem)
		if err != nil {
			return nil, err
		}
		return iface.Set{Elem: elem}, nil

	case iface.KindDict:
		key, err := decodeNode(w.Key)
		if err != nil {
			return nil, err
		}
		val, err := decodeNode(w.Val)
		if err != nil {
			return nil, err
		}
		return iface.Dict{Key: key, Val: val}, nil

	case iface.KindTuple:
		elems := make([]iface.Node, len(w.Elems))
		for i, e := range w.Elems {
			de, err := decodeNode(e)
			if err != nil {
				return nil, err
			}
			elems[i] = de
		}
		return iface.Tuple{Elems: elems}, nil

	case iface.KindMod:
		members := make(map[string]iface.Node, len(w.Members))
		for k, m := range w.Members {
			dm, err := decodeNode(m)
			if err != nil {
				return nil, err
			}
			members[k] = dm
		}
		return &iface.Mod{Name: w.Name, Members: members}, nil

	case iface.KindStruct:
		fields := make(map[string]*iface.Field, len(w.Fields))
		for k, f := range w.Fields {
			df, err := decodeNode(f)
			if err != nil {
				return nil, err
			}
			ff, ok := df.(*iface.Field)
			if !ok {
				return nil, merr.Internal("store: struct field %q decoded as %T, want *iface.Field", k, df)
			}
			fields[k] = ff
		}
		return &iface.Struct{Name: w.Name, Fields: fields}, nil

	case iface.KindEnum:
		variants := make(map[string]*iface.Variant, len(w.Variants))
		for k, v := range w.Variants {
			dv, err := decodeNode(v)
			if err != nil {
				return nil, err
			}
			vv, ok := dv.(*iface.Variant)
			if !ok {
				return nil, merr.Internal("store: enum variant %q decoded as %T, want *iface.Variant", k, dv)
			}
			variants[k] = vv
		}
		return &iface.Enum{Name: w.Name, Variants: variants}, nil

	case iface.KindFunc:
		params := make([]*iface.Param, len(w.Params))
		for i, p := range w.Params {
			dp, err := decodeNode(p)
			if err != nil {
				return nil, err
			}
			pp, ok := dp.(*iface.Param)
			if !ok {
				return nil, merr.Internal("store: func param %d decoded as %T, want *iface.Param", i, dp)
			}
			params[i] = pp
		}
		ret, err := decodeNode(w.Return)
		if err != nil {
			return nil, err
		}
		return &iface.Func{Name: w.Name, Params: params, Return: ret}, nil

	case iface.KindConst:
		t, err := decodeNode(w.Type)
		if err != nil {
			return nil, err
		}
		return &iface.Const{Name: w.Name, Type: t}, nil

	case iface.KindField:
		t, err := decodeNode(w.Type)
		if err != nil {
			return nil, err
		}
		return &iface.Field{Name: w.Name, Type: t}, nil

	case iface.KindVariant:
		t, err := decodeNode(w.Type)
		if err != nil {
			return nil, err
		}
		return &iface.Variant{Name: w.Name, Type: t}, nil

	case iface.KindParam:
		t, err := decodeNode(w.Type)
		if err != nil {
			return nil, err
		}
		return &iface.Param{Name: w.Name, Type: t}, nil

	default:
		return nil, merr.Internal("store: unrecognised node_type %q", w.NodeType)
	}
}

func encodeMembers(members map[string]iface.Node) (map[string]*wireNode, error) {
	out := make(map[string]*wireNode, len(members))
	for k, v := range members {
		w, err := encodeNode(v)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", k, err)
		}
		out[k] = w
	}
	return out, nil
}

func decodeMembers(wire map[string]*wireNode) (map[string]iface.Node, error) {
	out := make(map[string]iface.Node, len(wire))
	for k, w := range wire {
		n, err := decodeNode(w)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", k, err)
		}
		out[k] = n
	}
	return out, nil
}
