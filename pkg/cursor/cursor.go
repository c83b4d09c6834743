// Package cursor tracks the currently selected date.
package cursor

import (
	"time"

	"tableflip.dev/daybook/pkg/journal"
)

// Cursor holds the current date and time. Day and week steps move the
// calendar date and keep the wall clock time unchanged. Any time.Time is a
// valid position, including the zero value and years before 1.
type Cursor struct {
	at time.Time
}

// New starts the cursor at t.
func New(t time.Time) *Cursor {
	c := &Cursor{}
	c.Set(t)
	return c
}

// Set moves the cursor to t.
func (c *Cursor) Set(t time.Time) {
	c.at = t
}

func (c *Cursor) NextDay()  { c.step(1) }
func (c *Cursor) PrevDay()  { c.step(-1) }
func (c *Cursor) NextWeek() { c.step(7) }
func (c *Cursor) PrevWeek() { c.step(-7) }

func (c *Cursor) step(days int) {
	c.Set(c.at.AddDate(0, 0, days))
}

// Time returns the held value.
func (c *Cursor) Time() time.Time {
	return c.at
}

// Day is the key tasks are filed under for the current position.
func (c *Cursor) Day() journal.Day {
	return journal.DayOf(c.at)
}
