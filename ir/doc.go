// Package ir provides the structural tree for parsed JSON documents.
//
// A Node tags one value in a document with its kind and the half-open byte
// range [Off, End) of its exact source text, interior formatting included.
// The tree is immutable after parsing and carries no parent pointers, so one
// parse result can be shared freely across reads.
package ir
