// Package planner holds the pure planning computations: calendar and clock
// arithmetic, recurrence expansion, schedule conflict detection, display
// ordering and daily/weekly aggregates. Nothing here touches storage or
// mutates its inputs.
package planner

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar date form used everywhere in the app.
const DateLayout = "2006-01-02"

// ParseDate converts a YYYY-MM-DD string into a local calendar date. The date
// is constructed from its components so a timezone offset can never shift it
// across midnight. Malformed input is a caller bug, not a runtime condition.
func ParseDate(s string) time.Time {
	var year, month, day int
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &year, &month, &day); err != nil {
		panic(fmt.Sprintf("planner: malformed date %q: %v", s, err))
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

// FormatDate renders a date back into zero-padded YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// IsValidDate reports whether s parses as a well-formed calendar date.
// Handlers use this to validate input before the core treats parsing as a
// precondition.
func IsValidDate(s string) bool {
	_, err := time.ParseInLocation(DateLayout, s, time.Local)
	return err == nil
}

// Today returns the date string for the given wall-clock instant.
func Today(now time.Time) string {
	return FormatDate(now)
}

// NextDay returns the calendar day after the given date string.
func NextDay(date string) string {
	return AddDays(date, 1)
}

// AddDays shifts a date string by n calendar days (n may be negative).
func AddDays(date string, n int) string {
	return FormatDate(ParseDate(date).AddDate(0, 0, n))
}

// RelativeLabel classifies a date against today as Today/Tomorrow/Yesterday,
// falling back to a short weekday+month+day label such as "Mon, Jan 2".
func RelativeLabel(date, today string) string {
	switch date {
	case today:
		return "Today"
	case NextDay(today):
		return "Tomorrow"
	case AddDays(today, -1):
		return "Yesterday"
	}
	return ParseDate(date).Format("Mon, Jan 2")
}
