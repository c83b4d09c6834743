// Package tui hosts the Bubble Tea program for the daybook journal. The model
// forwards key presses to the session and renders it; it never changes
// journal state itself.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/tui/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the root Bubble Tea model.
type Model struct {
	session *app.Session
	ctx     context.Context

	width  int
	height int

	input textinput.Model
	tasks viewport.Model
	theme theme.Theme

	now func() time.Time
}

// New creates a model that renders and drives session.
func New(ctx context.Context, session *app.Session) *Model {
	ti := textinput.New()
	ti.Prompt = " > "
	ti.CharLimit = 256
	ti.Focus()

	vp := viewport.New(
		viewport.WithWidth(defaultWidth),
		viewport.WithHeight(defaultHeight),
	)

	th := theme.Default()
	return &Model{
		session: session,
		ctx:     ctx,
		width:   defaultWidth,
		height:  defaultHeight,
		input:   ti,
		tasks:   vp,
		theme:   th,
		now:     time.Now,
	}
}

// Run launches the Bubble Tea program and blocks until the session quits.
func Run(ctx context.Context, session *app.Session) error {
	p := tea.NewProgram(New(ctx, session), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update routes key presses into the session. Every key is fully applied
// before the next message is read.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, 1)
		m.height = max(msg.Height, 1)
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		for _, k := range keysFromMsg(msg) {
			m.session.HandleKey(m.ctx, k)
			if m.session.Quitting() {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}
