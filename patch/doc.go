// Package patch extracts and applies sparse, pointer-addressed value
// overrides between JSON texts.
//
// A Patch carries the verbatim source text of one replacement leaf value.
// Extract computes the minimal patch set turning a baseline text into an
// edited target; Apply splices a patch set back onto a baseline, reporting
// pointers that no longer resolve instead of failing. Extract followed by
// Apply reproduces the target exactly, provided no leaf was removed between
// the two texts.
package patch
