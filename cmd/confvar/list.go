package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	st, err := openStore(cfg.MainConfig)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		for _, id := range st.Files() {
			vs := st.Versions(id)
			_, hasBase := st.Baseline(id)
			status := ""
			if !hasBase {
				status = " (no baseline)"
			}
			fmt.Fprintf(cc.Out, "%s: %d profiles%s\n", id, len(vs), status)
		}
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: list takes at most one file argument", cli.ErrUsage)
	}
	id, err := fileID(args[0])
	if err != nil {
		return err
	}
	stale := map[string][]string{}
	if reports, err := st.Check(id); err == nil {
		for _, r := range reports {
			stale[r.Version.Name] = r.Invalid
		}
	}
	for _, v := range st.Versions(id) {
		line := fmt.Sprintf("%s: %d overrides", v.Name, len(v.Patches))
		if invalid, ok := stale[v.Name]; ok {
			line += fmt.Sprintf(" (%d stale)", len(invalid))
		}
		fmt.Fprintln(cc.Out, line)
	}
	return nil
}
