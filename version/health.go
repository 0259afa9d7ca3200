package version

import (
	"github.com/confvar/confvar/parse"
	"github.com/confvar/confvar/pointer"
)

// Report names a version with at least one patch pointer that no longer
// resolves against the current baseline. Applying such a version silently
// falls back to baseline values for the invalid pointers, so callers must
// surface reports to the user before applying.
type Report struct {
	Version *Version
	Invalid []string
}

// Check resolves every patch pointer of every version against base, parsed
// once. The result is sparse: a version appears iff at least one of its
// pointers fails to resolve, and then with exactly the failing pointers.
// An unparseable baseline invalidates every patch of every version.
//
// Check is a pure, read-only scan; neither base nor the versions are
// modified.
func Check(base []byte, versions []*Version) []Report {
	yBase, err := parse.Parse(base)
	var res []Report
	for _, v := range versions {
		var invalid []string
		for i := range v.Patches {
			p := &v.Patches[i]
			if err != nil || pointer.Resolve(yBase, pointer.Parse(p.Path)) == nil {
				invalid = append(invalid, p.Path)
			}
		}
		if len(invalid) == 0 {
			continue
		}
		res = append(res, Report{Version: v, Invalid: invalid})
	}
	return res
}
