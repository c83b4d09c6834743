package journal

import (
	"fmt"
	"time"
)

// LayoutISO is the on-disk and command line form of a Day.
const LayoutISO = "2006-01-02"

// Day is a calendar date with no time of day. It is the key tasks are filed
// under.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf drops the time-of-day component of t, in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// ParseDay reads a Day in LayoutISO form.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(LayoutISO, s)
	if err != nil {
		return Day{}, fmt.Errorf("journal: parse day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// Time returns midnight of the day in loc.
func (d Day) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Before reports whether d is earlier than other.
func (d Day) Before(other Day) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Day) String() string {
	return d.Time(time.UTC).Format(LayoutISO)
}

// MarshalText lets Day act as a JSON object key.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
