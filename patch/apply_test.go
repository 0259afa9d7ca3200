package patch

import (
	"slices"
	"testing"
)

func TestApplyEmptyPatchList(t *testing.T) {
	base := `{"a": 1}`
	res := Apply([]byte(base), nil)
	if res.Content != base {
		t.Errorf("content changed: %q", res.Content)
	}
	if len(res.Invalid) != 0 {
		t.Errorf("unexpected invalid patches: %v", res.Invalid)
	}
}

func TestApplyInvalidPointerReported(t *testing.T) {
	res := Apply([]byte(`{"a":1}`), []Patch{{Path: "/b", Value: "2"}})
	if res.Content != `{"a":1}` {
		t.Errorf("content changed: %q", res.Content)
	}
	if !slices.Equal(res.Invalid, []string{"/b"}) {
		t.Errorf("invalid = %v, want [/b]", res.Invalid)
	}
}

func TestApplyOffsetSafety(t *testing.T) {
	base := `{"a":1,"b":2,"c":3}`
	want := `{"a":10,"b":2,"c":30}`
	patches := []Patch{
		{Path: "/a", Value: "10"},
		{Path: "/c", Value: "30"},
	}
	for _, order := range [][]Patch{
		patches,
		{patches[1], patches[0]},
	} {
		res := Apply([]byte(base), order)
		if res.Content != want {
			t.Errorf("order %v: got %q, want %q", order, res.Content, want)
		}
		if len(res.Invalid) != 0 {
			t.Errorf("order %v: invalid %v", order, res.Invalid)
		}
	}
}

func TestApplyMixedValidInvalid(t *testing.T) {
	base := `{"a": 1, "b": 2}`
	res := Apply([]byte(base), []Patch{
		{Path: "/gone", Value: "9"},
		{Path: "/b", Value: "20"},
		{Path: "/also/gone", Value: "9"},
	})
	if res.Content != `{"a": 1, "b": 20}` {
		t.Errorf("content %q", res.Content)
	}
	if !slices.Equal(res.Invalid, []string{"/gone", "/also/gone"}) {
		t.Errorf("invalid %v", res.Invalid)
	}
}

func TestApplyUnparseableBaseline(t *testing.T) {
	base := `{"a": `
	res := Apply([]byte(base), []Patch{
		{Path: "/a", Value: "1"},
		{Path: "/b", Value: "2"},
	})
	if res.Content != base {
		t.Errorf("content changed: %q", res.Content)
	}
	if !slices.Equal(res.Invalid, []string{"/a", "/b"}) {
		t.Errorf("invalid %v", res.Invalid)
	}
}

// Duplicate pointers resolve to the same start offset; the patch latest in
// the input list wins.
func TestApplySameOffsetLastWins(t *testing.T) {
	base := `{"a": 1}`
	res := Apply([]byte(base), []Patch{
		{Path: "/a", Value: "2"},
		{Path: "/a", Value: "3"},
	})
	if res.Content != `{"a": 3}` {
		t.Errorf("content %q, want last-in-list to win", res.Content)
	}
	if len(res.Invalid) != 0 {
		t.Errorf("invalid %v", res.Invalid)
	}
}

func TestApplyWholeDocument(t *testing.T) {
	res := Apply([]byte(`{"a": 1}`), []Patch{{Path: "/", Value: `{"b": 2}`}})
	if res.Content != `{"b": 2}` {
		t.Errorf("content %q", res.Content)
	}
}

func TestApplyPreservesSurroundingFormatting(t *testing.T) {
	base := "{\n  \"a\": 1,\n  \"b\": 2\n}"
	res := Apply([]byte(base), []Patch{{Path: "/a", Value: "100"}})
	want := "{\n  \"a\": 100,\n  \"b\": 2\n}"
	if res.Content != want {
		t.Errorf("got %q, want %q", res.Content, want)
	}
}
