package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/confvar/confvar/parse"
	"github.com/confvar/confvar/store"
	"github.com/confvar/confvar/version"
)

func openStore(cfg *MainConfig) (*store.Store, error) {
	return store.Open(cfg.Config.Store)
}

// fileID canonicalizes a tracked file argument to an absolute clean path so
// the same file always maps to the same store records.
func fileID(arg string) (string, error) {
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", arg, err)
	}
	return filepath.Clean(abs), nil
}

// readInput reads from path, or from cc.In when path is empty or "-".
func readInput(cc *cli.Context, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// mustValidJSON parses d and converts a failure into the user-facing invalid
// JSON message.
func mustValidJSON(what string, d []byte) error {
	if _, err := parse.Parse(d); err != nil {
		return fmt.Errorf("%s is not valid JSON: %w", what, err)
	}
	return nil
}

// warnReports prints one warning line per unhealthy profile.
func warnReports(w io.Writer, reports []version.Report) {
	for _, r := range reports {
		fmt.Fprintf(w, "warning: profile %q: %d configuration values could not be located: %s\n",
			r.Version.Name, len(r.Invalid), strings.Join(r.Invalid, ", "))
	}
}
