package add

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/task"
)

type Add struct {
	Content     string
	Type        task.Type
	On          time.Time
	Interactive bool

	Persistence store.Persistence
	Printer     *printers.PrettyPrint
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	if n.Interactive {
		if err := n.prompt(); err != nil {
			return err
		}
	}
	if n.Type == "" {
		n.Type = task.Todo
	}

	snap, err := n.Persistence.Load(ctx)
	if err != nil {
		return err
	}
	tasks := journal.FromSnapshot(snap)
	day := journal.DayOf(n.On)
	tasks.Add(n.Content, n.Type, day)
	if err := n.Persistence.Save(ctx, tasks.Snapshot()); err != nil {
		return err
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.Title(printers.DayTitle(day))
	pp.Tasks(tasks.Get(day)...)
	return nil
}
