// Package pointer addresses values inside parsed JSON documents.
//
// A Pointer is a /-separated sequence of object keys and array indices.
// Resolution failure is an expected outcome (a stale patch), so it is
// reported as a nil node rather than an error.
package pointer

import (
	"strconv"
	"strings"

	"github.com/confvar/confvar/ir"
)

// Pointer is a parsed pointer path. The zero value addresses the whole
// document.
type Pointer []string

// Parse splits s on '/' into segments, dropping empty segments so leading
// and trailing slashes are tolerated. "" and "/" both yield the root
// pointer.
func Parse(s string) Pointer {
	parts := strings.Split(s, "/")
	res := make(Pointer, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		res = append(res, p)
	}
	return res
}

func (p Pointer) String() string {
	if len(p) == 0 {
		return "/"
	}
	return "/" + strings.Join(p, "/")
}

// IsRoot reports whether p addresses the whole document.
func (p Pointer) IsRoot() bool {
	return len(p) == 0
}

// Resolve walks root segment by segment and returns the addressed node, or
// nil if the pointer does not resolve: a missing object key, a non-numeric
// or out-of-range array index, or segments remaining at a scalar.
func Resolve(root *ir.Node, p Pointer) *ir.Node {
	cur := root
	for _, seg := range p {
		switch cur.Type {
		case ir.ObjectType:
			next := ir.Get(cur, seg)
			if next == nil {
				return nil
			}
			cur = next
		case ir.ArrayType:
			i, ok := arrayIndex(seg)
			if !ok || i >= len(cur.Values) {
				return nil
			}
			cur = cur.Values[i]
		default:
			return nil
		}
	}
	return cur
}

// arrayIndex parses seg as a non-negative decimal index. Signs and other
// non-digit characters are rejected.
func arrayIndex(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return i, true
}
