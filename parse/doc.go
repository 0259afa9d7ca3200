// Package parse parses JSON text into ir.Node trees.
//
// The parse is structure preserving: every node records the byte range of
// its exact source text, so string escapes, number notation, and interior
// whitespace of a value survive verbatim through pointer resolution and
// patch splicing.
//
//	node, err := parse.Parse([]byte(`{"name": "alice"}`))
package parse
