// Package store persists baselines and versions to a JSONL file, one record
// per line.
//
// The store owns the persisted record shapes, including the two legacy
// shapes the data model went through (flat per-patch records, then
// full-content snapshots). Loading detects each line's shape and migrates it
// through an ordered pipeline to the canonical baseline+patches form; each
// migration step is a pure function.
//
// The core engine never touches the store; it only transforms text and patch
// lists handed to it.
package store
