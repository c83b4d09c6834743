package cursor

import (
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/journal"
)

func TestDayRoundTrip(t *testing.T) {
	start := time.Date(2024, time.December, 31, 23, 15, 0, 0, time.UTC)
	c := New(start)
	c.NextDay()
	if got := c.Day(); got != (journal.Day{Year: 2025, Month: time.January, Day: 1}) {
		t.Fatalf("expected new year, got %v", got)
	}
	c.PrevDay()
	if !c.Time().Equal(start) {
		t.Fatalf("expected %v, got %v", start, c.Time())
	}
}

func TestWeekEqualsSevenDays(t *testing.T) {
	start := time.Date(2024, time.February, 25, 8, 0, 0, 0, time.UTC)
	byWeek := New(start)
	byDay := New(start)

	byWeek.NextWeek()
	for i := 0; i < 7; i++ {
		byDay.NextDay()
	}
	if byWeek.Day() != byDay.Day() {
		t.Fatalf("week %v != 7 days %v", byWeek.Day(), byDay.Day())
	}
	if got := byWeek.Day(); got != (journal.Day{Year: 2024, Month: time.March, Day: 3}) {
		t.Fatalf("expected leap-year aware step, got %v", got)
	}

	byWeek.PrevWeek()
	if !byWeek.Time().Equal(start) {
		t.Fatalf("expected prev week to undo next week")
	}
}

func TestTimeOfDayCarried(t *testing.T) {
	start := time.Date(2024, time.June, 1, 17, 42, 9, 0, time.UTC)
	c := New(start)
	c.NextWeek()
	c.PrevDay()
	h, m, s := c.Time().Clock()
	if h != 17 || m != 42 || s != 9 {
		t.Fatalf("expected clock to be carried, got %02d:%02d:%02d", h, m, s)
	}
}

func TestStepsPastYearOne(t *testing.T) {
	c := New(time.Date(1, time.January, 2, 0, 0, 0, 0, time.UTC))
	c.PrevDay()
	if !c.Time().IsZero() {
		t.Fatalf("expected the zero time, got %s", c.Time())
	}
	if got := c.Day(); got != (journal.Day{Year: 1, Month: time.January, Day: 1}) {
		t.Fatalf("unexpected day %+v", got)
	}
	c.PrevDay()
	if got := c.Day(); got != (journal.Day{Year: 0, Month: time.December, Day: 31}) {
		t.Fatalf("expected to keep stepping back, got %+v", got)
	}
	c.NextWeek()
	if got := c.Day(); got != (journal.Day{Year: 1, Month: time.January, Day: 7}) {
		t.Fatalf("expected to step forward again, got %+v", got)
	}
}
