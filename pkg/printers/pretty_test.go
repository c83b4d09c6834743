package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/task"
)

func init() {
	color.NoColor = true
}

func TestTasksShowsIndexAndGlyph(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	done := task.New("file taxes", task.Todo)
	done.Completed = true
	pp.Tasks(task.New("buy milk", task.Todo), done, task.New("standup", task.Event))

	out := buf.String()
	for _, want := range []string{"0 • buy milk", "1 × file taxes", "2 ○ standup"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestTasksEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Tasks()
	if got := buf.String(); got != " none\n\n" {
		t.Fatalf("unexpected empty output %q", got)
	}
}

func TestTitleWithCount(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.TitleWithCount("May 1, 2024", 1)
	pp.TitleWithCount("May 2, 2024", 3)
	want := "May 1, 2024 - 1 entry\nMay 2, 2024 - 3 entries\n"
	if got := buf.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMonthCounts(t *testing.T) {
	snap := journal.Snapshot{
		{Year: 2024, Month: time.May, Day: 3}:  {task.New("a", task.Todo), task.New("b", task.Note)},
		{Year: 2024, Month: time.May, Day: 31}: {task.New("c", task.Todo)},
		{Year: 2024, Month: time.June, Day: 3}: {task.New("d", task.Todo)},
	}
	counts := MonthCounts(time.Date(2024, time.May, 17, 0, 0, 0, 0, time.UTC), snap)
	if len(counts) != 31 {
		t.Fatalf("expected 31 days, got %d", len(counts))
	}
	if counts[2] != 2 || counts[30] != 1 {
		t.Fatalf("unexpected counts %v", counts)
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 3 {
		t.Fatalf("expected June excluded, total %d", total)
	}
}

func TestPrintMonthCountLayout(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	// May 2024 starts on a Wednesday.
	pp.PrintMonthCount(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), nil)

	lines := strings.Split(buf.String(), "\n")
	if !strings.Contains(lines[0], "May 2024") {
		t.Fatalf("expected heading, got %q", lines[0])
	}
	if lines[1] != "          1  2  3  4 " {
		t.Fatalf("unexpected first week %q", lines[1])
	}
}
