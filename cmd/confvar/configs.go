package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/confvar/confvar/config"
)

type MainConfig struct {
	StorePath string `cli:"name=store desc='path of the JSONL store (overrides config)'"`
	Color     bool   `cli:"name=color desc='force colored output'"`
	NoColor   bool   `cli:"name=no-color desc='disable colored output'"`

	Config *config.Config

	Main *cli.Command
}

// useColor decides color for w from flags first, then the config file's
// color setting, then tty detection.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	switch {
	case cfg.Color:
		return true
	case cfg.NoColor:
		return false
	}
	switch cfg.Config.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type BaselineConfig struct {
	*MainConfig
	Baseline *cli.Command
}

type SaveConfig struct {
	*MainConfig
	File string `cli:"name=f desc='read edited content from a file instead of stdin'"`

	Save *cli.Command
}

type ListConfig struct {
	*MainConfig
	List *cli.Command
}

type ShowConfig struct {
	*MainConfig
	Show *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type ApplyConfig struct {
	*MainConfig
	Auto   bool `cli:"name=auto desc='pick the profile from configured rules'"`
	DryRun bool `cli:"name=dry-run aliases=n desc='print the result instead of writing the file'"`
	Force  bool `cli:"name=force desc='write even when some overrides cannot be located'"`

	Apply *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type RmConfig struct {
	*MainConfig
	Rm *cli.Command
}

type ExportConfig struct {
	*MainConfig
	Export *cli.Command
}

type ImportConfig struct {
	*MainConfig
	File string `cli:"name=f desc='read the patch document from a file instead of stdin'"`

	Import *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Watch *cli.Command
}
