package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
)

func show(cfg *ShowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Show.Parse(cc, args)
	if err != nil {
		cfg.Show.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: show requires a file and a profile name", cli.ErrUsage)
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
	v, ok := st.Get(id, args[1])
	if !ok {
		return fmt.Errorf("no profile %q of %s", args[1], id)
	}
	res := v.Apply([]byte(base))
	warnInvalid(os.Stderr, v.Name, res.Invalid)
	if _, err := io.WriteString(cc.Out, res.Content); err != nil {
		return err
	}
	if !strings.HasSuffix(res.Content, "\n") {
		fmt.Fprintln(cc.Out)
	}
	return nil
}

func warnInvalid(w io.Writer, name string, invalid []string) {
	if len(invalid) == 0 {
		return
	}
	fmt.Fprintf(w, "warning: profile %q: %d configuration values could not be located: %s\n",
		name, len(invalid), strings.Join(invalid, ", "))
}
