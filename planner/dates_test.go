package planner

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []string{"2024-01-01", "2024-02-29", "2024-12-31", "2025-07-04"}
	for _, c := range cases {
		if got := FormatDate(ParseDate(c)); got != c {
			t.Errorf("round trip %s: got %s", c, got)
		}
	}
}

func TestParseDateIgnoresTimezone(t *testing.T) {
	t.Parallel()

	// Constructed from components, so the calendar day never shifts.
	d := ParseDate("2024-03-10")
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 10 {
		t.Fatalf("got %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", d)
	}
}

func TestNextDay(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"2024-01-01", "2024-01-02"},
		{"2024-01-31", "2024-02-01"},
		{"2024-02-28", "2024-02-29"},
		{"2023-02-28", "2023-03-01"},
		{"2024-12-31", "2025-01-01"},
	}
	for _, c := range cases {
		if got := NextDay(c.in); got != c.want {
			t.Errorf("NextDay(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestRelativeLabel(t *testing.T) {
	t.Parallel()

	const today = "2024-06-12"

	cases := []struct {
		date, want string
	}{
		{"2024-06-12", "Today"},
		{"2024-06-13", "Tomorrow"},
		{"2024-06-11", "Yesterday"},
		{"2024-06-17", "Mon, Jun 17"},
		{"2024-01-01", "Mon, Jan 1"},
	}
	for _, c := range cases {
		if got := RelativeLabel(c.date, today); got != c.want {
			t.Errorf("RelativeLabel(%s) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestToday(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 1, 23, 59, 0, 0, time.Local)
	if got := Today(now); got != "2024-06-01" {
		t.Fatalf("Today = %s", got)
	}
}
