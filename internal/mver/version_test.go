package mver

import (
	"encoding/json"
	"sort"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []string{"0.1", "1.0", "12.345", "0.0"}
	for _, s := range cases {
		v, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}
		if got := v.String(); got != s {
			t.Errorf("Parse(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestParseBad(t *testing.T) {
	cases := []string{"", "1", "1.", ".1", "a.b", "1.2.3", "-1.2", "1.2-rc1"}
	for _, s := range cases {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", s)
		}
	}
}

func TestDefault(t *testing.T) {
	if got := Default(); got != (Version{0, 1}) {
		t.Errorf("Default() = %v, want 0.1", got)
	}
}

func TestNextMinorMajor(t *testing.T) {
	v := MustParse("1.3")
	if got := v.NextMinor(); got != (Version{1, 4}) {
		t.Errorf("NextMinor() = %v, want 1.4", got)
	}
	if got := v.NextMajor(); got != (Version{2, 0}) {
		t.Errorf("NextMajor() = %v, want 2.0", got)
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0", 0},
		{"1.0", "1.1", -1},
		{"1.1", "1.0", 1},
		{"1.9", "2.0", -1},
		{"2.0", "1.9", 1},
	}
	for _, c := range cases {
		a, b := MustParse(c.a), MustParse(c.b)
		if got := a.Compare(b); got != c.want {
			t.Errorf("Compare(%s,%s) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSatisfies(t *testing.T) {
	cases := []struct {
		v, r string
		want bool
	}{
		{"1.3", "1.2", true},
		{"1.2", "1.2", true},
		{"1.1", "1.2", false},
		{"2.0", "1.2", false},
	}
	for _, c := range cases {
		v, r := MustParse(c.v), MustParse(c.r)
		if got := v.Satisfies(r); got != c.want {
			t.Errorf("%s.Satisfies(%s) = %v, want %v", c.v, c.r, got, c.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	v := MustParse("3.14")
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"3.14"` {
		t.Errorf("Marshal = %s, want \"3.14\"", b)
	}
	var got Version
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != v {
		t.Errorf("round-trip = %v, want %v", got, v)
	}
}

func TestListDescending(t *testing.T) {
	l := List{MustParse("1.0"), MustParse("2.3"), MustParse("0.9"), MustParse("2.1")}
	sort.Sort(l)
	want := []string{"2.3", "2.1", "1.0", "0.9"}
	for i, w := range want {
		if l[i].String() != w {
			t.Errorf("l[%d] = %s, want %s", i, l[i], w)
		}
	}
}
