package patch

import (
	"fmt"

	"github.com/confvar/confvar/debug"
	"github.com/confvar/confvar/ir"
	"github.com/confvar/confvar/parse"
	"github.com/confvar/confvar/pointer"
)

// Extract computes the patches that transform base into target. It walks the
// target's leaves in depth-first declaration order and records a patch for
// every leaf whose pointer does not resolve in base or whose verbatim source
// text differs byte for byte, so re-notating an unchanged value still counts.
// Identical leaves record nothing: that is what keeps profiles sparse.
//
// Leaves present in base but absent in target are not representable in this
// patch form and are not detected.
//
// Either text failing to parse is an error; callers validate first.
func Extract(base, target []byte) ([]Patch, error) {
	yBase, err := parse.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}
	yTarget, err := parse.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	var res []Patch
	err = ir.Leaves(yTarget, func(segs []string, leaf *ir.Node) error {
		ptr := pointer.Pointer(segs)
		raw := leaf.Raw(target)
		yb := pointer.Resolve(yBase, ptr)
		if yb != nil && yb.Raw(base) == raw {
			return nil
		}
		if debug.Patch() {
			debug.Logf("extract: %s -> %q\n", ptr, raw)
		}
		res = append(res, Patch{Path: ptr.String(), Value: raw})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
