// Package ui starts the interactive journal.
package ui

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/tui"
)

// DebugEnv names the variable that turns on the debug log.
const DebugEnv = "DAYBOOK_DEBUG"

var ErrNotTerminal = errors.New("daybook ui needs an interactive terminal")

type UI struct {
	Persistence store.Persistence
	On          *time.Time
}

func (d *UI) Do(ctx context.Context) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNotTerminal
	}

	if os.Getenv(DebugEnv) != "" && d.Persistence != nil {
		f, err := tea.LogToFile(filepath.Join(d.Persistence.Root(), "debug.log"), "daybook")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	session := app.Open(ctx, time.Now(), d.Persistence)
	if d.On != nil {
		session.SetCursor(*d.On)
	}
	return tui.Run(ctx, session)
}
