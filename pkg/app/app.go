// Package app holds the journal session: the single piece of state the event
// loop mutates. It ties the task store, the cursor and the mode machine
// together and runs submitted commands against them.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"tableflip.dev/daybook/pkg/command"
	"tableflip.dev/daybook/pkg/cursor"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/mode"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/task"
)

// Session is owned by exactly one caller. Presentation code reads it through
// the accessor methods, which never hand out mutable aliases.
type Session struct {
	Persistence store.Persistence

	tasks   *journal.Store
	cursor  *cursor.Cursor
	machine *mode.Machine

	// loadErr is set when Open could not read the journal. Saving is refused
	// from then on so the empty fallback never overwrites stored days.
	loadErr error

	status string
	quit   bool
}

// ErrNotLoaded is returned by Save after a failed load.
var ErrNotLoaded = errors.New("journal not loaded, changes are not saved")

// New returns a session with an empty journal positioned at now. Persistence
// may be nil, in which case nothing is saved.
func New(now time.Time, p store.Persistence) *Session {
	return &Session{
		Persistence: p,
		tasks:       journal.New(),
		cursor:      cursor.New(now),
		machine:     mode.NewMachine(),
	}
}

// Open is New followed by a load. A failed load leaves the journal empty,
// reports the problem on the status line and turns saving off.
func Open(ctx context.Context, now time.Time, p store.Persistence) *Session {
	s := New(now, p)
	if p == nil {
		return s
	}
	snap, err := p.Load(ctx)
	if err != nil {
		log.Printf("load %s: %v", p.Root(), err)
		s.loadErr = err
		s.status = fmt.Sprintf("ERR: load failed, starting empty: %v", err)
		return s
	}
	s.tasks = journal.FromSnapshot(snap)
	log.Printf("loaded %d tasks over %d days from %s", s.tasks.Len(), len(snap), p.Root())
	return s
}

// HandleKey feeds one key press through the mode machine and applies its
// effect.
func (s *Session) HandleKey(ctx context.Context, k mode.Key) {
	eff := s.machine.Handle(k)
	switch eff.Action {
	case mode.ActionPrevWeek:
		s.cursor.PrevWeek()
	case mode.ActionNextWeek:
		s.cursor.NextWeek()
	case mode.ActionNextDay:
		s.cursor.NextDay()
	case mode.ActionPrevDay:
		s.cursor.PrevDay()
	case mode.ActionQuit:
		s.quit = true
	case mode.ActionSubmit:
		s.Execute(ctx, eff.Input)
	}
}

// Execute parses input and applies it at the cursor's day. Changes are saved
// right away and the command is echoed on the status line; a failed save is
// reported there instead and the in-memory journal keeps the change.
func (s *Session) Execute(ctx context.Context, input string) command.Result {
	cmd := command.Parse(input)
	res := command.Apply(cmd, s.tasks, s.cursor.Day())
	if res.Quit {
		s.quit = true
	}
	if res.Changed {
		switch err := s.Save(ctx); {
		case errors.Is(err, ErrNotLoaded):
			s.status = "ERR: " + err.Error()
		case err != nil:
			s.status = "ERR: save failed: " + err.Error()
		default:
			s.status = cmd.String()
		}
	}
	return res
}

// Save writes the whole journal through the configured persistence.
func (s *Session) Save(ctx context.Context) error {
	if s.Persistence == nil {
		return nil
	}
	if s.loadErr != nil {
		return ErrNotLoaded
	}
	if err := s.Persistence.Save(ctx, s.tasks.Snapshot()); err != nil {
		log.Printf("save %s: %v", s.Persistence.Root(), err)
		return err
	}
	return nil
}

// SetCursor moves the current date, for starting on a day other than today.
func (s *Session) SetCursor(t time.Time) {
	s.cursor.Set(t)
}

// Mode returns the active mode.
func (s *Session) Mode() mode.Mode { return s.machine.Mode() }

// Buffer returns the text typed in the active mode.
func (s *Session) Buffer() string { return s.machine.Buffer() }

// Cursor returns the current date and time.
func (s *Session) Cursor() time.Time { return s.cursor.Time() }

// Day returns the day tasks are filed under.
func (s *Session) Day() journal.Day { return s.cursor.Day() }

// Tasks returns a copy of the tasks filed under day.
func (s *Session) Tasks(day journal.Day) []task.Task { return s.tasks.Get(day) }

// HasTasks reports whether day has ever been filed to.
func (s *Session) HasTasks(day journal.Day) bool { return s.tasks.Contains(day) }

// Days lists every filed day in order.
func (s *Session) Days() []journal.Day { return s.tasks.Days() }

// Snapshot returns a copy of the whole journal.
func (s *Session) Snapshot() journal.Snapshot { return s.tasks.Snapshot() }

// Status is the latest persistence message, empty when all is well.
func (s *Session) Status() string { return s.status }

// Quitting reports whether the session asked to terminate.
func (s *Session) Quitting() bool { return s.quit }
