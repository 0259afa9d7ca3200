package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "confvar").
		WithSynopsis("confvar [opts] command [opts]").
		WithDescription("confvar maintains named profiles of JSON configuration files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return confvarMain(cfg, cc, args)
		}).
		WithSubs(
			BaselineCommand(cfg),
			SaveCommand(cfg),
			ListCommand(cfg),
			ShowCommand(cfg),
			DiffCommand(cfg),
			ApplyCommand(cfg),
			CheckCommand(cfg),
			RmCommand(cfg),
			ExportCommand(cfg),
			ImportCommand(cfg),
			WatchCommand(cfg))
}

func BaselineCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BaselineConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("baseline").
		WithAliases("b", "base", "track").
		WithSynopsis("baseline <file>").
		WithDescription("commit the file's current on-disk content as its baseline").
		WithRun(func(cc *cli.Context, args []string) error {
			return baseline(cfg, cc, args)
		})
	cfg.Baseline = cmd
	return cmd
}

func SaveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SaveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("save").
		WithAliases("s").
		WithSynopsis("save [-f edited] <file> <profile>").
		WithDescription("extract a profile's overrides from an edited copy of the file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return save(cfg, cc, args)
		})
	cfg.Save = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("list").
		WithAliases("l", "ls").
		WithSynopsis("list [file]").
		WithDescription("list tracked files, or the profiles of one file").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
	cfg.List = cmd
	return cmd
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("show").
		WithSynopsis("show <file> <profile>").
		WithDescription("print a profile's effective content").
		WithRun(func(cc *cli.Context, args []string) error {
			return show(cfg, cc, args)
		})
	cfg.Show = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file> [profile]").
		WithDescription("diff the live on-disk content against a profile (or the baseline)").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("apply").
		WithAliases("a").
		WithSynopsis("apply [-auto] [-n] [-force] <file> [profile]").
		WithDescription("write a profile's effective content back to the file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
	cfg.Apply = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [file]").
		WithDescription("report profiles whose overrides no longer resolve against the baseline").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RmConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("rm").
		WithSynopsis("rm <file> <profile>").
		WithDescription("delete a profile").
		WithRun(func(cc *cli.Context, args []string) error {
			return rm(cfg, cc, args)
		})
	cfg.Rm = cmd
	return cmd
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("export").
		WithSynopsis("export <file> <profile>").
		WithDescription("render a profile as an RFC 6902 patch document").
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
	cfg.Export = cmd
	return cmd
}

func ImportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ImportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("import").
		WithSynopsis("import [-f patchfile] <file> <profile>").
		WithDescription("create a profile from an RFC 6902 patch document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return importCmd(cfg, cc, args)
		})
	cfg.Import = cmd
	return cmd
}

func WatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("watch").
		WithAliases("w").
		WithSynopsis("watch [file...]").
		WithDescription("watch tracked files and report profiles their edits would strand").
		WithRun(func(cc *cli.Context, args []string) error {
			return watch(cfg, cc, args)
		})
	cfg.Watch = cmd
	return cmd
}
