package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		cfg.Rm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: rm requires a file and a profile name", cli.ErrUsage)
	}
	id, err := fileID(args[0])
	if err != nil {
		return err
	}
	st, err := openStore(cfg.MainConfig)
	if err != nil {
		return err
	}
	if err := st.Delete(id, args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "deleted profile %q of %s\n", args[1], id)
	return nil
}
