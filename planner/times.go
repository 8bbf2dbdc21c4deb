package planner

import "fmt"

const minutesPerDay = 24 * 60

// ParseClock converts an HH:MM string (24-hour) into minutes since midnight.
// Same precondition stance as ParseDate: inputs come from constrained UI
// fields, malformed values are caller bugs.
func ParseClock(s string) int {
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%d:%d", &hh, &mm); err != nil {
		panic(fmt.Sprintf("planner: malformed clock %q: %v", s, err))
	}
	return hh*60 + mm
}

// FormatClock renders minutes since midnight as zero-padded HH:MM.
func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// IsValidClock reports whether s is a well-formed HH:MM within 00:00-23:59.
func IsValidClock(s string) bool {
	var hh, mm int
	if n, err := fmt.Sscanf(s, "%d:%d", &hh, &mm); err != nil || n != 2 {
		return false
	}
	return hh >= 0 && hh < 24 && mm >= 0 && mm < 60
}

// EndTime adds a duration in minutes to a start clock, wrapping at 24h.
// A task starting at 23:30 for 90 minutes ends at 01:00 on the same date
// string; tasks never span a date boundary in the data model.
func EndTime(start string, durationMinutes int) string {
	return FormatClock(ParseClock(start) + durationMinutes)
}

// FormatTimeRange renders both endpoints in 12-hour form joined by " - ",
// e.g. "9:00 AM - 10:30 AM".
func FormatTimeRange(start, end string) string {
	return format12h(ParseClock(start)) + " - " + format12h(ParseClock(end))
}

func format12h(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	hh, mm := minutes/60, minutes%60
	period := "AM"
	if hh >= 12 {
		period = "PM"
	}
	hh %= 12
	if hh == 0 {
		hh = 12
	}
	return fmt.Sprintf("%d:%02d %s", hh, mm, period)
}
