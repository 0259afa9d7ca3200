// Package token tokenizes JSON text into offset-tagged tokens.
//
// Every token records the half-open byte range [Off, End) it occupies in the
// input. The ranges are what the rest of the system is built on: parse
// assembles them into a tree whose nodes span their exact source text, and
// patching splices replacement text by range.
package token
