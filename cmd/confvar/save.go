package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/confvar/confvar/patch"
	"github.com/confvar/confvar/version"
)

func save(cfg *SaveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Save.Parse(cc, args)
	if err != nil {
		cfg.Save.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: save requires a file and a profile name", cli.ErrUsage)
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
		return fmt.Errorf("no baseline for %s; run `confvar baseline %s` first", id, args[0])
	}
	edited, err := readInput(cc, cfg.File)
	if err != nil {
		return err
	}
	if err := mustValidJSON("edited content", edited); err != nil {
		return err
	}
	patches, err := patch.Extract([]byte(base), edited)
	if err != nil {
		return err
	}
	v := &version.Version{FileID: id, Name: args[1], Patches: patches}
	if err := st.Put(v); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "saved profile %q of %s with %d overrides\n", v.Name, id, len(patches))
	return nil
}
