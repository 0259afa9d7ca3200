package ir

import (
	"slices"
	"testing"
)

// hand-built tree for {"a": 1, "b": [true, {"c": "x"}]}
func testTree() *Node {
	return &Node{
		Type: ObjectType,
		Fields: []*Node{
			{Type: StringType, String: "a"},
			{Type: StringType, String: "b"},
		},
		Values: []*Node{
			{Type: NumberType, Number: "1"},
			{
				Type: ArrayType,
				Values: []*Node{
					{Type: BoolType, Bool: true},
					{
						Type:   ObjectType,
						Fields: []*Node{{Type: StringType, String: "c"}},
						Values: []*Node{{Type: StringType, String: "x"}},
					},
				},
			},
		},
	}
}

func TestLeavesOrder(t *testing.T) {
	var got [][]string
	err := Leaves(testTree(), func(segs []string, y *Node) error {
		got = append(got, slices.Clone(segs))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"a"},
		{"b", "0"},
		{"b", "1", "c"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d leaves, want %d", len(got), len(want))
	}
	for i := range got {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("leaf %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLeavesScalarRoot(t *testing.T) {
	n := 0
	err := Leaves(&Node{Type: NullType}, func(segs []string, y *Node) error {
		n++
		if len(segs) != 0 {
			t.Errorf("scalar root visited with segments %v", segs)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("scalar root visited %d times", n)
	}
}

func TestGet(t *testing.T) {
	y := testTree()
	if Get(y, "a") == nil {
		t.Errorf("missing field a")
	}
	if Get(y, "z") != nil {
		t.Errorf("unexpected field z")
	}
}

func TestVisit(t *testing.T) {
	pre, post := 0, 0
	err := testTree().Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root, number, array, bool, object, string: fields are not visited
	if pre != 6 || post != 6 {
		t.Errorf("pre=%d post=%d, want 6/6", pre, post)
	}
}
