package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/confvar/confvar/rules"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var profile string
	switch {
	case cfg.Auto && len(args) == 1:
	case !cfg.Auto && len(args) == 2:
		profile = args[1]
	default:
		return fmt.Errorf("%w: apply requires a file and a profile name, or a file with -auto", cli.ErrUsage)
	}
	id, err := fileID(args[0])
	if err != nil {
		return err
	}
	if cfg.Auto {
		p, ok := rules.Select(cfg.Config.Rules, id, envMap())
		if !ok {
			return fmt.Errorf("no rule selects a profile for %s", id)
		}
		profile = p
	}
	st, err := openStore(cfg.MainConfig)
	if err != nil {
		return err
	}
	base, ok := st.Baseline(id)
	if !ok {
		return fmt.Errorf("no baseline for %s", id)
	}
	v, ok := st.Get(id, profile)
	if !ok {
		return fmt.Errorf("no profile %q of %s", profile, id)
	}
	res := v.Apply([]byte(base))
	if len(res.Invalid) > 0 {
		warnInvalid(os.Stderr, v.Name, res.Invalid)
		if !cfg.Force {
			return fmt.Errorf("refusing to apply an incomplete profile; re-save it or pass -force")
		}
	}
	if cfg.DryRun {
		if _, err := io.WriteString(cc.Out, res.Content); err != nil {
			return err
		}
		if !strings.HasSuffix(res.Content, "\n") {
			fmt.Fprintln(cc.Out)
		}
		return nil
	}
	mode := os.FileMode(0o644)
	if st, err := os.Stat(id); err == nil {
		mode = st.Mode().Perm()
	}
	if err := os.WriteFile(id, []byte(res.Content), mode); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "applied profile %q to %s\n", profile, id)
	return nil
}

func envMap() map[string]string {
	res := map[string]string{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			res[k] = v
		}
	}
	return res
}
