// Package journal implements the date-indexed task store.
//
// Tasks are filed under a Day in insertion order and addressed by their
// position in that order. Toggle and Delete never fail: an unknown day or an
// index outside [0, len) leaves the store untouched and reports false, so a
// stale index typed by the user costs nothing.
package journal

import (
	"sort"

	"tableflip.dev/daybook/pkg/task"
)

// Snapshot is the full serializable image of a Store.
type Snapshot map[Day][]task.Task

// Store maps days to their ordered tasks. The zero value is not usable; call
// New or FromSnapshot.
type Store struct {
	days map[Day][]task.Task
}

// New returns an empty store.
func New() *Store {
	return &Store{days: make(map[Day][]task.Task)}
}

// FromSnapshot builds a store from a deep copy of s. A nil snapshot yields an
// empty store.
func FromSnapshot(s Snapshot) *Store {
	st := New()
	for day, tasks := range s {
		st.days[day] = cloneTasks(tasks)
	}
	return st
}

// Add appends a new open task to day, creating the day if needed.
func (s *Store) Add(content string, typ task.Type, day Day) {
	s.days[day] = append(s.days[day], task.New(content, typ))
}

// Toggle flips the completed flag of the task at index on day.
func (s *Store) Toggle(day Day, index int) bool {
	tasks, ok := s.days[day]
	if !ok || index < 0 || index >= len(tasks) {
		return false
	}
	tasks[index].Completed = !tasks[index].Completed
	return true
}

// Delete removes the task at index on day; later tasks shift down by one.
// A day emptied this way is kept as an empty list.
func (s *Store) Delete(day Day, index int) bool {
	tasks, ok := s.days[day]
	if !ok || index < 0 || index >= len(tasks) {
		return false
	}
	s.days[day] = append(tasks[:index:index], tasks[index+1:]...)
	return true
}

// Get returns a copy of the tasks filed under day, never nil.
func (s *Store) Get(day Day) []task.Task {
	return cloneTasks(s.days[day])
}

// Contains reports whether day has ever been filed to.
func (s *Store) Contains(day Day) bool {
	_, ok := s.days[day]
	return ok
}

// Days lists every key in chronological order.
func (s *Store) Days() []Day {
	days := make([]Day, 0, len(s.days))
	for day := range s.days {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}

// Len counts tasks across all days.
func (s *Store) Len() int {
	n := 0
	for _, tasks := range s.days {
		n += len(tasks)
	}
	return n
}

// Snapshot returns a deep copy of the store's contents.
func (s *Store) Snapshot() Snapshot {
	out := make(Snapshot, len(s.days))
	for day, tasks := range s.days {
		out[day] = cloneTasks(tasks)
	}
	return out
}

func cloneTasks(tasks []task.Task) []task.Task {
	out := make([]task.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
