package task

import (
	"fmt"
	"strings"
)

// Type identifies what kind of bullet a task is.
type Type string

const (
	// Todo is an actionable item that can be completed.
	Todo Type = "Todo"
	// Event is something scheduled or something that happened.
	Event Type = "Event"
	// Note is free-form information.
	Note Type = "Note"
)

// AllTypes returns the supported task types in display order.
func AllTypes() []Type {
	return []Type{Todo, Event, Note}
}

// ParseType converts a case-insensitive name to a Type. An empty value is a Todo.
func ParseType(raw string) (Type, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Todo, nil
	}
	for _, candidate := range AllTypes() {
		if strings.EqualFold(string(candidate), trimmed) {
			return candidate, nil
		}
	}
	return Todo, fmt.Errorf("task: unknown type %q", raw)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	for _, candidate := range AllTypes() {
		if t == candidate {
			return []byte(t), nil
		}
	}
	return nil, fmt.Errorf("task: cannot encode type %q", string(t))
}

// UnmarshalText implements encoding.TextUnmarshaler. Only the exact variant
// names are accepted so stored data stays canonical.
func (t *Type) UnmarshalText(b []byte) error {
	for _, candidate := range AllTypes() {
		if string(b) == string(candidate) {
			*t = candidate
			return nil
		}
	}
	return fmt.Errorf("task: unknown type %q", string(b))
}
