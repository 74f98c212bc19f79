package store

import (
	"encoding/json"
	"io"

	"github.com/myxa-lang/myxa/internal/index"
	"github.com/myxa-lang/myxa/internal/model"
)

// rawNamespace and rawIndex mirror spec §6's index.json shape:
// { name, namespaces: { <name>: { name, packages: { "<M>.<m>": Package } } } }.
type rawNamespace struct {
	Name     string                `json:"name"`
	Packages map[string]rawPackage `json:"packages"`
}

type rawIndex struct {
	Name       string                  `json:"name"`
	Namespaces map[string]rawNamespace `json:"namespaces"`
}

// EncodeIndex translates an Index into its JSON wire form.
func EncodeIndex(idx *index.Index) ([]byte, error) {
	raw := rawIndex{Name: "myxa-index", Namespaces: map[string]rawNamespace{}}

	for name, versions := range idx.Snapshot() {
		packages := make(map[string]rawPackage, len(versions))
		for vstr, pkg := range versions {
			rp, err := toRawPackage(pkg)
			if err != nil {
				return nil, err
			}
			packages[vstr] = rp
		}
		raw.Namespaces[name] = rawNamespace{Name: name, Packages: packages}
	}

	return json.MarshalIndent(raw, "", "  ")
}

// DecodeIndex parses an Index from its JSON wire form.
func DecodeIndex(data []byte) (*index.Index, error) {
	var raw rawIndex
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	snapshot := make(map[string]map[string]*model.Package, len(raw.Namespaces))
	for name, ns := range raw.Namespaces {
		versions := make(map[string]*model.Package, len(ns.Packages))
		for vstr, rp := range ns.Packages {
			pkg, err := fromRawPackage(rp)
			if err != nil {
				return nil, err
			}
			versions[vstr] = pkg
		}
		snapshot[name] = versions
	}

	return index.FromSnapshot(snapshot), nil
}

// WriteIndex writes idx's JSON encoding to w.
func WriteIndex(w io.Writer, idx *index.Index) error {
	data, err := EncodeIndex(idx)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadIndex reads and decodes an Index from r.
func ReadIndex(r io.Reader) (*index.Index, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeIndex(data)
}
