package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/tui/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month containing on, emphasising days with tasks.
func (pp *PrettyPrint) Calendar(on time.Time, snap journal.Snapshot) {
	then := time.Date(on.Year(), on.Month(), 1, 0, 0, 0, 0, on.Location())
	pp.PrintMonthCount(then, MonthCounts(then, snap))
}

// MonthCounts returns the number of tasks filed on each day of the month
// containing then, indexed from the first.
func MonthCounts(then time.Time, snap journal.Snapshot) []int {
	count := make([]int, calendar.DaysIn(then))
	for day, tasks := range snap {
		if day.Year == then.Year() && day.Month == then.Month() && day.Day <= len(count) {
			count[day.Day-1] += len(tasks)
		}
	}
	return count
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	out := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	days := calendar.DaysIn(then)
	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(out, "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(out, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// DayTitle formats a day the way the CLI headings show it.
func DayTitle(day journal.Day) string {
	return day.Time(time.Local).Format(layoutUS)
}
