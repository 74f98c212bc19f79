package store

import (
	"encoding/json"
	"io"

	"github.com/myxa-lang/myxa/internal/model"
	"github.com/myxa-lang/myxa/internal/mver"
)

// rawInfo, rawDependency, rawPin, rawLock, and rawPackage are the JSON wire
// forms of the model package's types — the same rawManifest/rawLock split
// golang-dep's manifest.go/lock.go use to keep decode logic separate from
// the in-memory type. rawLock carries only the pins: Lock.Parents is not
// written, and a decoded Lock has an empty Parents map.
type rawInfo struct {
	Name        string       `json:"name"`
	Version     mver.Version `json:"version"`
	Description string       `json:"description,omitempty"`
}

type rawDependency struct {
	Name    string       `json:"name"`
	Version mver.Version `json:"version"`
}

type rawPin struct {
	Name    string       `json:"name"`
	Version mver.Version `json:"version"`
}

type rawLock struct {
	Pins map[string]rawPin `json:"pins"`
}

type rawPackage struct {
	Info         rawInfo                  `json:"info"`
	Dependencies map[string]rawDependency `json:"dependencies,omitempty"`
	Lock         *rawLock                 `json:"lock,omitempty"`
	Members      map[string]*wireNode     `json:"members"`
}

// EncodePackage translates a Package into its JSON wire form.
func EncodePackage(pkg *model.Package) ([]byte, error) {
	raw, err := toRawPackage(pkg)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(raw, "", "  ")
}

// DecodePackage parses a Package from its JSON wire form.
func DecodePackage(data []byte) (*model.Package, error) {
	var raw rawPackage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return fromRawPackage(raw)
}

// WritePackage writes pkg's JSON encoding to w.
func WritePackage(w io.Writer, pkg *model.Package) error {
	data, err := EncodePackage(pkg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadPackage reads and decodes a Package from r.
func ReadPackage(r io.Reader) (*model.Package, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodePackage(data)
}

func toRawPackage(pkg *model.Package) (rawPackage, error) {
	deps := make(map[string]rawDependency, len(pkg.Dependencies))
	for k, d := range pkg.Dependencies {
		deps[k] = rawDependency{Name: d.Name, Version: d.Version}
	}

	var rl *rawLock
	if pkg.Lock != nil {
		pins := make(map[string]rawPin, len(pkg.Lock.Pins))
		for k, p := range pkg.Lock.Pins {
			pins[k] = rawPin{Name: p.Name, Version: p.Version}
		}
		rl = &rawLock{Pins: pins}
	}

	members, err := encodeMembers(pkg.Members)
	if err != nil {
		return rawPackage{}, err
	}

	return rawPackage{
		Info: rawInfo{
			Name:        pkg.Info.Name,
			Version:     pkg.Info.Version,
			Description: pkg.Info.Description,
		},
		Dependencies: deps,
		Lock:         rl,
		Members:      members,
	}, nil
}

func fromRawPackage(raw rawPackage) (*model.Package, error) {
	deps := make(map[string]model.Dependency, len(raw.Dependencies))
	for k, d := range raw.Dependencies {
		deps[k] = model.Dependency{Name: d.Name, Version: d.Version}
	}

	var lock *model.Lock
	if raw.Lock != nil {
		lock = model.NewLock()
		for k, p := range raw.Lock.Pins {
			lock.Pins[k] = model.Pin{Name: p.Name, Version: p.Version}
		}
	}

	members, err := decodeMembers(raw.Members)
	if err != nil {
		return nil, err
	}

	return &model.Package{
		Info: model.Info{
			Name:        raw.Info.Name,
			Version:     raw.Info.Version,
			Description: raw.Info.Description,
		},
		Dependencies: deps,
		Lock:         lock,
		Members:      members,
	}, nil
}
