package ir

import "strconv"

// Node is one value in a parsed document. [Off, End) spans the node's exact
// source text. For ObjectType nodes, Fields[i] is the key node for the value
// at Values[i]; key nodes are StringType with the decoded key in String.
type Node struct {
	Type   Type
	Off    int
	End    int
	Fields []*Node
	Values []*Node

	String string
	Bool   bool
	Number string
}

// Raw returns the verbatim source text the node spans within d. The slice d
// must be the same bytes the node was parsed from.
func (y *Node) Raw(d []byte) string {
	return string(d[y.Off:y.End])
}

// Get returns the value of the first field named field, or nil.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Visit walks the tree in depth-first declaration order, calling f before
// and after each node's children. Returning dive=false skips children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Leaves calls f for each scalar node of the tree in depth-first declaration
// order together with the path segments leading to it. Object traversal
// appends the key per property, array traversal the decimal index per
// element. A scalar root is visited with zero segments. The segs slice is
// reused between calls; f must copy it to retain it.
func Leaves(root *Node, f func(segs []string, y *Node) error) error {
	return leaves(root, nil, f)
}

func leaves(y *Node, segs []string, f func(segs []string, y *Node) error) error {
	switch y.Type {
	case ObjectType:
		for i, field := range y.Fields {
			if err := leaves(y.Values[i], append(segs, field.String), f); err != nil {
				return err
			}
		}
		return nil
	case ArrayType:
		for i, yy := range y.Values {
			if err := leaves(yy, append(segs, strconv.Itoa(i)), f); err != nil {
				return err
			}
		}
		return nil
	default:
		return f(segs, y)
	}
}
