package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/mode"
	"tableflip.dev/daybook/pkg/task"
	"tableflip.dev/daybook/pkg/tui/calendar"
)

const (
	layoutLong  = "January 02, 2006"
	layoutMonth = "January 2006"

	commandBoxWidth = 60
)

// View renders the layout for the active mode.
func (m *Model) View() string {
	switch m.session.Mode() {
	case mode.Normal:
		return m.viewNormal()
	case mode.Future:
		return m.viewFuture()
	default:
		return m.viewLog()
	}
}

func (m *Model) viewNormal() string {
	header := m.theme.Header.Width(m.width).Render(m.session.Mode().String() + " Mode")
	status := m.statusLine()
	paneHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status)
	title := "Today " + m.session.Cursor().Format(layoutLong)
	return joinVertical(header, m.taskPane(title, m.width, paneHeight), status)
}

// viewLog shows the monthly log beside the day's tasks. Command mode adds the
// command box underneath; the other modes get a one line footer.
func (m *Model) viewLog() string {
	var bottom string
	if m.session.Mode() == mode.Command {
		bottom = joinVertical(m.commandBox(), m.statusLine())
	} else {
		bottom = m.footer()
	}
	contentHeight := m.height - lipgloss.Height(bottom)

	sidebarWidth := min(max(m.width/5, 14), 24)
	sidebar := m.monthlyLog(sidebarWidth, contentHeight)
	title := m.session.Cursor().Format(layoutLong)
	pane := m.taskPane(title, m.width-sidebarWidth, contentHeight)

	return joinVertical(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, pane), bottom)
}

// viewFuture lays out every month of the cursor's year as a grid.
func (m *Model) viewFuture() string {
	year := m.session.Cursor().Year()
	loc := m.session.Cursor().Location()

	boxes := make([]string, 0, 12)
	for month := time.January; month <= time.December; month++ {
		first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		body := calendar.Render(first, m.dayMarks(first), m.theme.Calendar)
		title := m.theme.Pane.Title.Render(first.Format(layoutMonth))
		boxes = append(boxes, m.theme.Pane.Frame.Render(joinVertical(title, body)))
	}

	cols := 4
	if w := lipgloss.Width(boxes[0]); w > 0 {
		cols = min(max(m.width/w, 1), 4)
	}
	var rows []string
	for i := 0; i < len(boxes); i += cols {
		end := min(i+cols, len(boxes))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes[i:end]...))
	}
	return joinVertical(append(rows, m.footer())...)
}

func (m *Model) taskPane(title string, width, height int) string {
	frame := m.theme.Pane.Frame
	innerWidth := max(width-frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-frame.GetVerticalFrameSize()-1, 1)

	m.tasks.SetWidth(innerWidth)
	m.tasks.SetHeight(innerHeight)
	m.tasks.SetContent(m.taskLines(innerWidth))

	body := joinVertical(m.theme.Pane.Title.Render(title), m.tasks.View())
	return frame.Width(width).Render(body)
}

func (m *Model) taskLines(width int) string {
	tasks := m.session.Tasks(m.session.Day())
	if len(tasks) == 0 {
		return m.theme.Pane.Empty.Render("no entries")
	}

	var lines []string
	for i, t := range tasks {
		idx := fmt.Sprintf("%2d ", i)
		bullet := t.Bullet().String()
		prefixWidth := lipgloss.Width(idx) + lipgloss.Width(bullet) + 1
		wrapped := strings.Split(wordwrap.String(t.Content, max(width-prefixWidth, 1)), "\n")

		prefix := m.theme.Pane.Index.Render(idx) + m.bulletStyle(t).Render(bullet) + " "
		lines = append(lines, prefix+m.theme.Pane.Body.Render(wrapped[0]))
		indent := strings.Repeat(" ", prefixWidth)
		for _, cont := range wrapped[1:] {
			lines = append(lines, indent+m.theme.Pane.Body.Render(cont))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) bulletStyle(t task.Task) lipgloss.Style {
	switch t.Type {
	case task.Event:
		return m.theme.Bullet.Event
	case task.Note:
		return m.theme.Bullet.Note
	default:
		if t.Completed {
			return m.theme.Bullet.Done
		}
		return m.theme.Bullet.Open
	}
}

func (m *Model) monthlyLog(width, height int) string {
	cur := m.session.Cursor()
	first := time.Date(cur.Year(), cur.Month(), 1, 0, 0, 0, 0, cur.Location())
	lines := calendar.MonthlyLog(first, m.dayMarks(first), m.theme.Calendar)

	frame := m.theme.Pane.Frame
	visible := max(height-frame.GetVerticalFrameSize()-1, 1)
	if len(lines) > visible {
		// Keep the selected day in view.
		start := min(max(cur.Day()-visible, 0), len(lines)-visible)
		lines = lines[start : start+visible]
	}

	body := joinVertical(m.theme.Pane.Title.Render(first.Format(layoutMonth)), strings.Join(lines, "\n"))
	return frame.Width(width).Render(body)
}

func (m *Model) dayMarks(first time.Time) []calendar.Day {
	today := journal.DayOf(m.now())
	selected := m.session.Day()
	days := make([]calendar.Day, 0, 31)
	for d := 1; d <= calendar.DaysIn(first); d++ {
		day := journal.Day{Year: first.Year(), Month: first.Month(), Day: d}
		days = append(days, calendar.Day{
			Day:        d,
			HasEntry:   m.session.HasTasks(day),
			IsToday:    day == today,
			IsSelected: day == selected,
		})
	}
	return days
}

func (m *Model) commandBox() string {
	m.input.SetValue(m.session.Buffer())
	m.input.CursorEnd()

	width := min(m.width, commandBoxWidth)
	body := joinVertical(m.theme.Command.Title.Render("Command"), m.input.View())
	box := m.theme.Command.Frame.Width(width).Render(body)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
}

// footer shows the active mode, anything typed so far and the status.
func (m *Model) footer() string {
	line := m.theme.Footer.Mode.Render(m.session.Mode().String())
	if m.session.Mode().Buffering() {
		line += m.theme.Command.Prompt.Render(" > ") + m.session.Buffer()
	}
	return joinVertical(line, m.statusLine())
}

func (m *Model) statusLine() string {
	status := m.session.Status()
	if status == "" {
		return ""
	}
	if strings.HasPrefix(status, "ERR:") {
		return m.theme.Footer.Error.Render(status)
	}
	return m.theme.Footer.Status.Render(status)
}

// joinVertical stacks the non-empty parts.
func joinVertical(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}
