package get

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/task"
)

type Get struct {
	On   time.Time
	All  bool
	JSON bool

	Persistence store.Persistence
	Out         io.Writer
}

// dayJSON is one day in --json output.
type dayJSON struct {
	Day   journal.Day `json:"day"`
	Tasks []task.Task `json:"tasks"`
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	snap, err := n.Persistence.Load(ctx)
	if err != nil {
		return err
	}
	tasks := journal.FromSnapshot(snap)

	days := []journal.Day{journal.DayOf(n.On)}
	if n.All {
		days = tasks.Days()
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}

	if n.JSON {
		all := make([]dayJSON, 0, len(days))
		for _, d := range days {
			all = append(all, dayJSON{Day: d, Tasks: tasks.Get(d)})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	}

	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	for _, d := range days {
		list := tasks.Get(d)
		pp.TitleWithCount(printers.DayTitle(d), len(list))
		pp.Tasks(list...)
	}
	return nil
}
