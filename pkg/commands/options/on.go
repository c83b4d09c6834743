package options

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// ErrBadDate is returned when --on matches neither accepted layout.
var ErrBadDate = errors.New("bad date")

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28" or --on="2/28".`)
}

// GetOn returns the requested date in local time, or nil when --on was not
// given.
func (o *OnOptions) GetOn() (*time.Time, error) {
	return o.getOn(time.Now())
}

func (o *OnOptions) getOn(now time.Time) (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err == nil {
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
		return &t, nil
	}

	// Let the year be the same.
	t, err = time.Parse(layoutISOShort, o.OnString)
	if err != nil {
		return nil, fmt.Errorf("%w %q: use 2006-1-2 or 1/2", ErrBadDate, o.OnString)
	}
	t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
	// I am gonna assume if you said 1/3 on 12/5, you meant next year, not 11 months ago.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if t.Before(today) {
		t = t.AddDate(1, 0, 0)
	}
	return &t, nil
}

// Day returns the --on date, or now when it was not given.
func (o *OnOptions) Day() (time.Time, error) {
	on, err := o.GetOn()
	if err != nil {
		return time.Time{}, err
	}
	if on == nil {
		return time.Now(), nil
	}
	return *on, nil
}
