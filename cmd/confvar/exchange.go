package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/confvar/confvar/store"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		cfg.Export.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: export requires a file and a profile name", cli.ErrUsage)
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
	doc, err := store.ExportRFC6902([]byte(base), v)
	if err != nil {
		return err
	}
	if _, err := cc.Out.Write(doc); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	return nil
}

func importCmd(cfg *ImportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Import.Parse(cc, args)
	if err != nil {
		cfg.Import.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: import requires a file and a profile name", cli.ErrUsage)
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
	doc, err := readInput(cc, cfg.File)
	if err != nil {
		return err
	}
	v, err := store.ImportRFC6902([]byte(base), id, args[1], doc)
	if err != nil {
		return err
	}
	if err := st.Put(v); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "imported profile %q of %s with %d overrides\n", v.Name, id, len(v.Patches))
	return nil
}
