// Package task defines the journal's task record.
package task

import "tableflip.dev/daybook/pkg/glyph"

// Task is a single bullet filed under a day.
type Task struct {
	Content   string     `json:"content"`
	Type      Type       `json:"task_type"`
	Completed bool       `json:"completed"`
	DueDate   *Timestamp `json:"due_date"`
}

// New returns an open task with no due date.
func New(content string, typ Type) Task {
	return Task{
		Content: content,
		Type:    typ,
	}
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

// Bullet maps the task onto the glyph shown in front of it. Completion only
// matters for todos.
func (t Task) Bullet() glyph.Bullet {
	switch t.Type {
	case Event:
		return glyph.Event
	case Note:
		return glyph.Note
	default:
		if t.Completed {
			return glyph.Completed
		}
		return glyph.Task
	}
}

func (t Task) String() string {
	return t.Bullet().String() + " " + t.Content
}
