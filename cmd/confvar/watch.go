package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fsnotify/fsnotify"
	"github.com/scott-cotton/cli"

	"github.com/confvar/confvar/debug"
	"github.com/confvar/confvar/parse"
	"github.com/confvar/confvar/version"
)

// watch reports, for each on-disk edit of a tracked file, which profiles
// would become stale if the edit were committed as the new baseline.
func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		cfg.Watch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	st, err := openStore(cfg.MainConfig)
	if err != nil {
		return err
	}
	var ids []string
	if len(args) > 0 {
		for _, a := range args {
			id, err := fileID(a)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
	} else {
		for _, id := range st.Files() {
			if _, ok := st.Baseline(id); ok {
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return fmt.Errorf("nothing to watch; commit a baseline first")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	for _, id := range ids {
		if err := w.Add(id); err != nil {
			return fmt.Errorf("watching %s: %w", id, err)
		}
		fmt.Fprintf(cc.Out, "watching %s\n", id)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debug.Watch() {
				debug.Logf("watch: %s %s\n", ev.Op, ev.Name)
			}
			id, err := fileID(ev.Name)
			if err != nil {
				continue
			}
			reportEdit(cfg, cc, st, id)
			// editors replace files; re-add to keep following the path
			w.Add(id)
		}
	}
}

func reportEdit(cfg *WatchConfig, cc *cli.Context, st storeIface, id string) {
	d, err := os.ReadFile(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", id, err)
		return
	}
	if _, err := parse.Parse(d); err != nil {
		fmt.Fprintf(cc.Out, "%s: edited content is not valid JSON\n", id)
		return
	}
	base, _ := st.Baseline(id)
	if string(d) == base {
		fmt.Fprintf(cc.Out, "%s: back in sync with baseline\n", id)
		return
	}
	reports := version.Check(d, st.Versions(id))
	if len(reports) == 0 {
		fmt.Fprintf(cc.Out, "%s: changed; all profiles would stay healthy\n", id)
		return
	}
	fmt.Fprintf(cc.Out, "%s: changed; committing this as baseline would strand:\n", id)
	for _, r := range reports {
		fmt.Fprintf(cc.Out, "  profile %q: %d overrides\n", r.Version.Name, len(r.Invalid))
	}
}

// storeIface is the slice of the store watch needs; it keeps reportEdit
// testable without a JSONL file on disk.
type storeIface interface {
	Baseline(fileID string) (string, bool)
	Versions(fileID string) []*version.Version
}
