package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/mode"
)

var start = time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)

func stripANSIString(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func newTestModel(t *testing.T) (*Model, *app.Session) {
	t.Helper()
	session := app.New(start, nil)
	m := New(context.Background(), session)
	m.now = func() time.Time { return start }
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, session
}

func press(m *Model, text string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range text {
		_, cmd = m.Update(tea.KeyPressMsg{Text: string(r), Code: r})
	}
	return cmd
}

func enter(m *Model) tea.Cmd {
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNormalViewShowsDay(t *testing.T) {
	m, _ := newTestModel(t)
	out := stripANSIString(m.View())
	if !strings.Contains(out, "Normal Mode") {
		t.Fatalf("expected mode header, got:\n%s", out)
	}
	if !strings.Contains(out, "Today May 01, 2024") {
		t.Fatalf("expected day title, got:\n%s", out)
	}
	if !strings.Contains(out, "no entries") {
		t.Fatalf("expected empty marker, got:\n%s", out)
	}
}

func TestCommandAddRendersTask(t *testing.T) {
	m, session := newTestModel(t)

	press(m, "m")
	if session.Mode() != mode.Command {
		t.Fatalf("expected command mode, got %s", session.Mode())
	}
	press(m, "add buy milk")
	out := stripANSIString(m.View())
	if !strings.Contains(out, "Command") || !strings.Contains(out, "add buy milk") {
		t.Fatalf("expected command box with buffer, got:\n%s", out)
	}

	if cmd := enter(m); isQuit(cmd) {
		t.Fatalf("add should not quit")
	}
	if session.Mode() != mode.Normal {
		t.Fatalf("expected normal mode after submit, got %s", session.Mode())
	}
	out = stripANSIString(m.View())
	if !strings.Contains(out, " 0 • buy milk") {
		t.Fatalf("expected rendered task, got:\n%s", out)
	}

	press(m, "m")
	press(m, "done 0")
	enter(m)
	out = stripANSIString(m.View())
	if !strings.Contains(out, " 0 × buy milk") {
		t.Fatalf("expected completed task, got:\n%s", out)
	}
}

func TestEscapeLeavesCommandMode(t *testing.T) {
	m, session := newTestModel(t)
	press(m, "madd x")
	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if session.Mode() != mode.Normal || session.Buffer() != "" {
		t.Fatalf("expected cleared normal mode, got %s %q", session.Mode(), session.Buffer())
	}
	if got := session.Tasks(session.Day()); len(got) != 0 {
		t.Fatalf("escape should not add tasks, got %v", got)
	}
}

func TestNavigationMovesTitle(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "l")
	if out := stripANSIString(m.View()); !strings.Contains(out, "Today May 02, 2024") {
		t.Fatalf("expected next day, got:\n%s", out)
	}
	press(m, "kk")
	if out := stripANSIString(m.View()); !strings.Contains(out, "Today April 30, 2024") {
		t.Fatalf("expected two days back, got:\n%s", out)
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t)
	if cmd := press(m, "q"); !isQuit(cmd) {
		t.Fatalf("expected q to quit")
	}

	m, _ = newTestModel(t)
	press(m, "mquit")
	if cmd := enter(m); !isQuit(cmd) {
		t.Fatalf("expected quit command to quit")
	}

	m, _ = newTestModel(t)
	if _, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}); !isQuit(cmd) {
		t.Fatalf("expected ctrl+c to quit")
	}
}

func TestFutureViewShowsYear(t *testing.T) {
	m, session := newTestModel(t)
	press(m, "f")
	if session.Mode() != mode.Future {
		t.Fatalf("expected future mode, got %s", session.Mode())
	}
	out := stripANSIString(m.View())
	for _, month := range []string{"January 2024", "May 2024", "December 2024"} {
		if !strings.Contains(out, month) {
			t.Fatalf("expected %s in future view, got:\n%s", month, out)
		}
	}
	if !strings.Contains(out, "Future") {
		t.Fatalf("expected mode footer, got:\n%s", out)
	}
}

func TestInsertShowsBuffer(t *testing.T) {
	m, session := newTestModel(t)
	press(m, "iadd note")
	out := stripANSIString(m.View())
	if !strings.Contains(out, "Insert > add note") {
		t.Fatalf("expected insert footer, got:\n%s", out)
	}
	if !strings.Contains(out, "May 2024") {
		t.Fatalf("expected monthly log, got:\n%s", out)
	}
	enter(m)
	if got := session.Tasks(session.Day()); len(got) != 1 || got[0].Content != "note" {
		t.Fatalf("expected insert to run the command, got %v", got)
	}
}
