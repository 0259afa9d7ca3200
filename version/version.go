// Package version models named profiles of a tracked configuration file and
// checks their health against the file's baseline.
package version

import (
	"github.com/confvar/confvar/patch"
)

// Version is one named profile of a tracked file: the baseline with a sparse
// set of overrides. Pointers are unique within one version's patch set.
// A version with zero patches is identical to the baseline.
type Version struct {
	ID      string        `json:"id,omitempty"`
	FileID  string        `json:"fileId"`
	Name    string        `json:"name"`
	Patches []patch.Patch `json:"patches"`
}

// Apply produces the version's effective content over base: the baseline
// text with each patch's span replaced. Stale patches are reported in the
// result, not applied.
func (v *Version) Apply(base []byte) patch.Result {
	return patch.Apply(base, v.Patches)
}

// Pointers returns the version's patch pointers in declaration order.
func (v *Version) Pointers() []string {
	res := make([]string, len(v.Patches))
	for i := range v.Patches {
		res[i] = v.Patches[i].Path
	}
	return res
}
