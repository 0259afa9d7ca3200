package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func baseline(cfg *BaselineConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Baseline.Parse(cc, args)
	if err != nil {
		cfg.Baseline.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: baseline requires a file argument", cli.ErrUsage)
	}
	id, err := fileID(args[0])
	if err != nil {
		return err
	}
	d, err := os.ReadFile(id)
	if err != nil {
		return err
	}
	if err := mustValidJSON(args[0], d); err != nil {
		return err
	}
	st, err := openStore(cfg.MainConfig)
	if err != nil {
		return err
	}
	reports, err := st.SetBaseline(id, string(d))
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "baseline committed for %s\n", id)
	warnReports(os.Stderr, reports)
	return nil
}
