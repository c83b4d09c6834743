package task

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/glyph"
)

func TestParseType(t *testing.T) {
	for in, want := range map[string]Type{"": Todo, "todo": Todo, "EVENT": Event, " note ": Note} {
		got, err := ParseType(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}
	if _, err := ParseType("mood"); err == nil {
		t.Fatalf("expected unknown type error")
	}
}

func TestTaskJSON(t *testing.T) {
	due := time.Date(2024, time.June, 2, 9, 0, 0, 0, time.UTC)
	in := Task{Content: "ship", Type: Event, Completed: true, DueDate: NewTimestamp(due)}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	raw := string(b)
	for _, want := range []string{`"task_type":"Event"`, `"due_date":"2024-06-02T09:00:00Z"`, `"completed":true`} {
		if !strings.Contains(raw, want) {
			t.Fatalf("expected %s in %s", want, raw)
		}
	}

	var out Task
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Type != Event || out.DueDate == nil || !out.DueDate.Equal(due) {
		t.Fatalf("unexpected decode %+v", out)
	}

	if err := json.Unmarshal([]byte(`{"content":"x","task_type":"Mood"}`), &out); err == nil {
		t.Fatalf("expected unknown variant to fail")
	}
	if err := json.Unmarshal([]byte(`{"content":"x","task_type":"Note","due_date":null}`), &out); err != nil || out.DueDate != nil {
		t.Fatalf("expected null due date, got %v / %v", out.DueDate, err)
	}
}

func TestBullet(t *testing.T) {
	cases := []struct {
		task Task
		want glyph.Bullet
	}{
		{Task{Type: Todo}, glyph.Task},
		{Task{Type: Todo, Completed: true}, glyph.Completed},
		{Task{Type: Event, Completed: true}, glyph.Event},
		{Task{Type: Note}, glyph.Note},
	}
	for _, tc := range cases {
		if got := tc.task.Bullet(); got != tc.want {
			t.Fatalf("%+v: expected %v, got %v", tc.task, tc.want, got)
		}
	}
}

func TestCloneDetachesDueDate(t *testing.T) {
	orig := Task{Content: "a", Type: Todo, DueDate: NewTimestamp(time.Unix(0, 0))}
	cp := orig.Clone()
	cp.DueDate.Time = time.Unix(100, 0)
	if orig.DueDate.Unix() != 0 {
		t.Fatalf("clone shares due date")
	}
}
