package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/confvar/confvar/textdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: diff requires a file and optionally a profile name", cli.ErrUsage)
	}
	id, err := fileID(args[0])
	if err != nil {
		return err
	}
	st, err := openStore(cfg.MainConfig)
	if err != nil {
		return err
	}
	base, ok := st.Baseline(id)
	if !ok {
		return fmt.Errorf("no baseline for %s", id)
	}
	live, err := os.ReadFile(id)
	if err != nil {
		return err
	}
	// default comparison is live vs baseline; a profile name compares live
	// vs that profile's effective content
	want := base
	if len(args) == 2 {
		v, ok := st.Get(id, args[1])
		if !ok {
			return fmt.Errorf("no profile %q of %s", args[1], id)
		}
		res := v.Apply([]byte(base))
		warnInvalid(os.Stderr, v.Name, res.Invalid)
		want = res.Content
	}
	out := textdiff.Render(string(live), want, textdiff.Options{
		Color: cfg.useColor(cc.Out),
	})
	if out == "" {
		return nil
	}
	if _, err := io.WriteString(cc.Out, out); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
