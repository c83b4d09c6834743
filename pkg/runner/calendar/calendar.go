package calendar

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/store"
)

type Calendar struct {
	On time.Time

	Persistence store.Persistence
	Out         io.Writer
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show calendar, no persistence")
	}
	snap, err := n.Persistence.Load(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Calendar(n.On, snap)
	return nil
}
