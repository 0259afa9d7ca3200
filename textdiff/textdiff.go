// Package textdiff renders line diffs between two texts for terminal
// display, e.g. a profile's effective content against the live file.
package textdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Options struct {
	Color bool
}

var (
	insLine = color.New(color.FgGreen).SprintFunc()
	delLine = color.New(color.FgRed).SprintFunc()
)

// Render produces a line-oriented diff from a to b, with -/+ prefixes and
// optional color. Equal regions are emitted with a leading space. Returns ""
// when the texts are identical.
func Render(a, b string, opts Options) string {
	if a == b {
		return ""
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	sb := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			writeLines(sb, d.Text, "-", delLine, opts.Color)
		case diffpatch.DiffInsert:
			writeLines(sb, d.Text, "+", insLine, opts.Color)
		case diffpatch.DiffEqual:
			writeLines(sb, d.Text, " ", nil, false)
		}
	}
	return sb.String()
}

func writeLines(sb *strings.Builder, text, prefix string, paint func(...interface{}) string, colored bool) {
	for _, line := range splitLines(text) {
		out := prefix + line
		if colored && paint != nil {
			out = paint(out)
		}
		sb.WriteString(out)
		sb.WriteByte('\n')
	}
}

// splitLines splits on newlines, dropping a trailing empty fragment so a
// terminating newline does not produce a phantom line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
