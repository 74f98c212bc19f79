// Package mver implements myxa's two-field version identifier: an ordered
// pair of (major, minor) integers and the minor-compatibility predicate that
// the rest of the system builds on.
package mver

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// versionRegex is the compiled form of the version grammar, \d+\.\d+.
// Compiled once at init, mirroring the semver.Version parsing idiom.
var versionRegex = regexp.MustCompile(`^([0-9]+)\.([0-9]+)$`)

// ErrBadVersion is returned when a string does not match \d+\.\d+.
var ErrBadVersion = errors.New("badversion: not a valid major.minor version string")

// Version is an ordered pair (Major, Minor) of non-negative integers.
type Version struct {
	Major, Minor uint64
}

// Default returns the version new packages start at: 0.1.
func Default() Version {
	return Version{Major: 0, Minor: 1}
}

// Parse parses "<major>.<minor>" into a Version. It fails with ErrBadVersion
// if s does not match \d+\.\d+.
func Parse(s string) (Version, error) {
	m := versionRegex.FindStringSubmatch(s)
	if m == nil {
		return Version{}, errors.Wrapf(ErrBadVersion, "%q", s)
	}

	major, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Version{}, errors.Wrapf(ErrBadVersion, "%q: major overflow", s)
	}
	minor, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return Version{}, errors.Wrapf(ErrBadVersion, "%q: minor overflow", s)
	}

	return Version{Major: major, Minor: minor}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// literals whose validity is known at call time.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical "<major>.<minor>" textual form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// NextMinor returns a copy with Minor incremented.
func (v Version) NextMinor() Version {
	return Version{Major: v.Major, Minor: v.Minor + 1}
}

// NextMajor returns a copy with Major incremented and Minor reset to zero.
func (v Version) NextMajor() Version {
	return Version{Major: v.Major + 1, Minor: 0}
}

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater than
// w, under lexicographic (Major, Minor) order.
func (v Version) Compare(w Version) int {
	switch {
	case v.Major != w.Major:
		if v.Major < w.Major {
			return -1
		}
		return 1
	case v.Minor != w.Minor:
		if v.Minor < w.Minor {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Less reports whether v sorts before w.
func (v Version) Less(w Version) bool { return v.Compare(w) < 0 }

// Equal reports whether v and w denote the same version.
func (v Version) Equal(w Version) bool { return v.Compare(w) == 0 }

// Satisfies reports whether v satisfies requirement r: same major, and v's
// minor is at least r's minor.
func (v Version) Satisfies(r Version) bool {
	return v.Major == r.Major && v.Minor >= r.Minor
}

// MarshalJSON renders v as its canonical "M.m" string, per spec §6's
// version serialisation rule.
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON parses v from its canonical "M.m" string form.
func (v *Version) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// List is a slice of Version implementing sort.Interface in descending
// order, matching the Solver's "enumerate from the index in descending
// Version order" requirement.
type List []Version

func (l List) Len() int           { return len(l) }
func (l List) Less(i, j int) bool { return l[j].Less(l[i]) } // descending
func (l List) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }
