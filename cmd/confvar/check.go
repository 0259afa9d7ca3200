package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	st, err := openStore(cfg.MainConfig)
	if err != nil {
		return err
	}
	var ids []string
	if len(args) > 0 {
		if len(args) != 1 {
			return fmt.Errorf("%w: check takes at most one file argument", cli.ErrUsage)
		}
		id, err := fileID(args[0])
		if err != nil {
			return err
		}
		ids = []string{id}
	} else {
		ids = st.Files()
	}
	unhealthy := 0
	for _, id := range ids {
		reports, err := st.Check(id)
		if err != nil {
			// files known only through legacy version records may lack a
			// baseline; that is itself worth reporting
			fmt.Fprintf(cc.Out, "%s: %v\n", id, err)
			unhealthy++
			continue
		}
		for _, r := range reports {
			fmt.Fprintf(cc.Out, "%s: profile %q: stale pointers: %s\n",
				id, r.Version.Name, strings.Join(r.Invalid, ", "))
			unhealthy++
		}
	}
	if unhealthy > 0 {
		return cli.ExitCodeErr(1)
	}
	fmt.Fprintln(cc.Out, "all profiles healthy")
	return nil
}
