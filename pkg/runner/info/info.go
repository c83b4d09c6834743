package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	for _, env := range []string{store.ConfigPathEnv, store.PathEnv, store.LegacyPathEnv} {
		if v := os.Getenv(env); v != "" {
			_, _ = fmt.Fprintf(out, "%s found on env, using %s\n", env, v)
		} else {
			_, _ = fmt.Fprintf(out, "%s env var not set\n", env)
		}
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if f := store.ConfigFile(n.Config); f != "" {
		_, _ = fmt.Fprintln(out, "Config file:", f)
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())

	if n.Persistence == nil {
		return errors.New("failed to create persistence object")
	}
	snap, err := n.Persistence.Load(ctx)
	if err != nil {
		return err
	}
	tasks := journal.FromSnapshot(snap)

	_, _ = fmt.Fprintf(out, "Days:\n")
	days := tasks.Days()
	for _, d := range days {
		_, _ = fmt.Fprintf(out, "  %s  %d\n", d, len(tasks.Get(d)))
	}
	if len(days) == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no days")
	}
	return nil
}
