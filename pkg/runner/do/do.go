// Package do runs a single journal command from the shell.
package do

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/command"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/store"
)

var ErrInvalidCommand = errors.New("invalid command")

type Do struct {
	Input string
	On    time.Time

	Persistence store.Persistence
	Out         io.Writer
}

func (n *Do) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not run, no persistence")
	}
	cmd := command.Parse(n.Input)
	if cmd.Kind == command.Invalid {
		return fmt.Errorf("%w %q: use add <text>, del <n> or done <n>", ErrInvalidCommand, n.Input)
	}

	snap, err := n.Persistence.Load(ctx)
	if err != nil {
		return err
	}
	tasks := journal.FromSnapshot(snap)
	day := journal.DayOf(n.On)

	res := command.Apply(cmd, tasks, day)
	if res.Changed {
		if err := n.Persistence.Save(ctx, tasks.Snapshot()); err != nil {
			return err
		}
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out}
	if !res.Changed && !res.Quit {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintf(out, "%s: nothing changed\n", cmd)
	}
	pp.Title(printers.DayTitle(day))
	pp.Tasks(tasks.Get(day)...)
	return nil
}
