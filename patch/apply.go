package patch

import (
	"sort"

	"github.com/confvar/confvar/debug"
	"github.com/confvar/confvar/parse"
	"github.com/confvar/confvar/pointer"
)

// Result is the outcome of applying a patch set. Invalid lists the pointers
// of patches that could not be located in the baseline, in input order; they
// are reported, not applied, and do not fail the operation.
type Result struct {
	Content string
	Invalid []string
}

// Apply splices patches onto base. It never fails: an unparseable baseline
// returns the text unchanged with every patch reported invalid.
//
// Valid patches are applied in descending start-offset order. Splicing from
// the end of the document backward keeps the remaining, lower offsets valid
// while every substitution shifts the text after it; ascending order would
// apply stale offsets and corrupt the document. When two patches resolve to
// the same start offset (duplicate or overlapping pointers), the one latest
// in the input list wins and the earlier ones are skipped.
func Apply(base []byte, patches []Patch) Result {
	if len(patches) == 0 {
		return Result{Content: string(base)}
	}
	yBase, err := parse.Parse(base)
	if err != nil {
		invalid := make([]string, len(patches))
		for i := range patches {
			invalid[i] = patches[i].Path
		}
		return Result{Content: string(base), Invalid: invalid}
	}

	type splice struct {
		off, end int
		value    string
	}
	byOff := map[int]int{} // start offset -> index into edits
	var edits []splice
	var invalid []string
	for i := range patches {
		p := &patches[i]
		y := pointer.Resolve(yBase, pointer.Parse(p.Path))
		if y == nil {
			invalid = append(invalid, p.Path)
			continue
		}
		s := splice{off: y.Off, end: y.End, value: p.Value}
		if at, ok := byOff[y.Off]; ok {
			edits[at] = s
			continue
		}
		byOff[y.Off] = len(edits)
		edits = append(edits, s)
	}
	sort.Slice(edits, func(i, j int) bool {
		return edits[i].off > edits[j].off
	})

	content := string(base)
	for _, e := range edits {
		if debug.Patch() {
			debug.Logf("apply: [%d,%d) <- %q\n", e.off, e.end, e.value)
		}
		content = content[:e.off] + e.value + content[e.end:]
	}
	return Result{Content: content, Invalid: invalid}
}
