package options

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGetOn(t *testing.T) {
	now := time.Date(2024, time.May, 15, 18, 0, 0, 0, time.UTC)
	cases := map[string]time.Time{
		"2024-5-1":   time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		"2023-12-31": time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
		"6/2":        time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC),
		"5/15":       time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC),
		"1/3":        time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		o := OnOptions{OnString: in}
		got, err := o.getOn(now)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
}

func TestGetOnEmpty(t *testing.T) {
	o := OnOptions{}
	got, err := o.getOn(time.Now())
	if err != nil || got != nil {
		t.Fatalf("expected nil, nil; got %v, %v", got, err)
	}
}

func TestGetOnBadDate(t *testing.T) {
	o := OnOptions{OnString: "tomorrow"}
	if _, err := o.getOn(time.Now()); !errors.Is(err, ErrBadDate) {
		t.Fatalf("expected ErrBadDate, got %v", err)
	}
}

func TestWrap80(t *testing.T) {
	in := strings.Repeat("journal entries wrap at eighty columns ", 6)
	got := Wrap80(in)
	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected several lines, got %q", got)
	}
	for _, l := range lines {
		if len(l) > 80 {
			t.Fatalf("line longer than 80 columns: %q", l)
		}
	}
	if strings.Join(strings.Fields(got), " ") != strings.TrimSpace(in) {
		t.Fatalf("wrapping changed the words: %q", got)
	}
}
