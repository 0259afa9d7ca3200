package pointer

import (
	"slices"
	"testing"

	"github.com/confvar/confvar/parse"
)

func TestParsePointer(t *testing.T) {
	for _, tst := range []struct {
		in   string
		want Pointer
	}{
		{"", nil},
		{"/", nil},
		{"/a", Pointer{"a"}},
		{"a", Pointer{"a"}},
		{"/a/b", Pointer{"a", "b"}},
		{"/a/b/", Pointer{"a", "b"}},
		{"//a//b", Pointer{"a", "b"}},
		{"/a/0/c", Pointer{"a", "0", "c"}},
	} {
		got := Parse(tst.in)
		if !slices.Equal(got, tst.want) {
			t.Errorf("Parse(%q): got %v, want %v", tst.in, got, tst.want)
		}
	}
}

func TestPointerString(t *testing.T) {
	if got := Parse("").String(); got != "/" {
		t.Errorf("root pointer renders %q", got)
	}
	if got := Parse("/a/0").String(); got != "/a/0" {
		t.Errorf("got %q", got)
	}
}

type resolveTest struct {
	doc  string
	ptr  string
	want string // verbatim text; "" means not found
}

var resolveTests = []resolveTest{
	{`{"a": 1}`, "/a", `1`},
	{`{"a": 1}`, "", `{"a": 1}`},
	{`{"a": 1}`, "/", `{"a": 1}`},
	{`{"a": {"b": [10, 20]}}`, "/a/b/1", `20`},
	{`[1,2,3]`, "/1", `2`},
	{`[1,2,3]`, "/3", ``},
	{`[1,2,3]`, "/x", ``},
	{`[1,2,3]`, "/-1", ``},
	{`[1,2,3]`, "/+1", ``},
	{`{"a": 1}`, "/b", ``},
	{`{"a": 1}`, "/a/b", ``},
	{`{"a": "x y"}`, "/a", `"x y"`},
	// first match wins on duplicate keys
	{`{"a": 1, "a": 2}`, "/a", `1`},
	// keys are matched exactly, not as indices
	{`{"0": "zero"}`, "/0", `"zero"`},
}

func TestResolve(t *testing.T) {
	for _, tst := range resolveTests {
		y, err := parse.Parse([]byte(tst.doc))
		if err != nil {
			t.Fatalf("parse %q: %v", tst.doc, err)
		}
		got := Resolve(y, Parse(tst.ptr))
		if tst.want == "" {
			if got != nil {
				t.Errorf("Resolve(%q, %q): expected not found, got %q", tst.doc, tst.ptr, got.Raw([]byte(tst.doc)))
			}
			continue
		}
		if got == nil {
			t.Errorf("Resolve(%q, %q): not found, want %q", tst.doc, tst.ptr, tst.want)
			continue
		}
		if raw := got.Raw([]byte(tst.doc)); raw != tst.want {
			t.Errorf("Resolve(%q, %q): got %q, want %q", tst.doc, tst.ptr, raw, tst.want)
		}
	}
}
