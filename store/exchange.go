package store

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/confvar/confvar/parse"
	"github.com/confvar/confvar/patch"
	"github.com/confvar/confvar/pointer"
	"github.com/confvar/confvar/version"
)

// rfcOp is one RFC 6902 operation.
type rfcOp struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value"`
}

// ExportRFC6902 renders a version as an RFC 6902 patch document against
// base: replace for pointers that resolve, add for pointers whose parent
// resolves. Stale pointers are an ErrStale; callers run the health check
// first. The document is validated by applying it with the json-patch
// library before it is returned.
func ExportRFC6902(base []byte, v *version.Version) ([]byte, error) {
	yBase, err := parse.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}
	ops := make([]rfcOp, 0, len(v.Patches))
	for i := range v.Patches {
		p := &v.Patches[i]
		ptr := pointer.Parse(p.Path)
		op := rfcOp{Op: "replace", Path: rfcPointer(ptr), Value: json.RawMessage(p.Value)}
		if pointer.Resolve(yBase, ptr) == nil {
			if ptr.IsRoot() || pointer.Resolve(yBase, ptr[:len(ptr)-1]) == nil {
				return nil, fmt.Errorf("%w: %s", ErrStale, p.Path)
			}
			op.Op = "add"
		}
		ops = append(ops, op)
	}
	doc, err := json.MarshalIndent(ops, "", "  ")
	if err != nil {
		return nil, err
	}
	dec, err := jsonpatch.DecodePatch(doc)
	if err != nil {
		return nil, fmt.Errorf("exported patch does not decode: %w", err)
	}
	if _, err := dec.Apply(base); err != nil {
		return nil, fmt.Errorf("exported patch does not apply: %w", err)
	}
	return doc, nil
}

// ImportRFC6902 applies an RFC 6902 patch document to base and re-extracts
// the result into a version's sparse verbatim patches.
func ImportRFC6902(base []byte, fileID, name string, doc []byte) (*version.Version, error) {
	dec, err := jsonpatch.DecodePatch(doc)
	if err != nil {
		return nil, fmt.Errorf("decoding patch document: %w", err)
	}
	out, err := dec.Apply(base)
	if err != nil {
		return nil, fmt.Errorf("applying patch document: %w", err)
	}
	patches, err := patch.Extract(base, out)
	if err != nil {
		return nil, err
	}
	return &version.Version{FileID: fileID, Name: name, Patches: patches}, nil
}

// rfcPointer renders an internal pointer in RFC 6901 syntax. Internal
// segments cannot contain '/', so only '~' needs escaping.
func rfcPointer(p pointer.Pointer) string {
	if p.IsRoot() {
		return ""
	}
	segs := make([]string, len(p))
	for i, seg := range p {
		segs[i] = strings.ReplaceAll(seg, "~", "~0")
	}
	return "/" + strings.Join(segs, "/")
}
