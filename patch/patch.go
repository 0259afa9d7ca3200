package patch

// Patch overrides the value at Path with Value, the exact source text of the
// replacement node. Keeping the text verbatim preserves the original number
// notation, string escaping, and interior whitespace of that one value.
type Patch struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}
