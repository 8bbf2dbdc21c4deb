package planner

import "testing"

func TestClockRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		clock   string
		minutes int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"12:00", 720},
		{"23:59", 1439},
	}
	for _, c := range cases {
		if got := ParseClock(c.clock); got != c.minutes {
			t.Errorf("ParseClock(%s) = %d, want %d", c.clock, got, c.minutes)
		}
		if got := FormatClock(c.minutes); got != c.clock {
			t.Errorf("FormatClock(%d) = %s, want %s", c.minutes, got, c.clock)
		}
	}
}

func TestEndTimeWrapsAtMidnight(t *testing.T) {
	t.Parallel()

	cases := []struct {
		start string
		dur   int
		want  string
	}{
		{"09:00", 60, "10:00"},
		{"23:30", 90, "01:00"},
		{"23:00", 60, "00:00"},
		{"00:00", 1439, "23:59"},
		{"12:15", 0, "12:15"},
	}
	for _, c := range cases {
		if got := EndTime(c.start, c.dur); got != c.want {
			t.Errorf("EndTime(%s, %d) = %s, want %s", c.start, c.dur, got, c.want)
		}
	}
}

func TestFormatTimeRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		start, end, want string
	}{
		{"09:00", "10:30", "9:00 AM - 10:30 AM"},
		{"00:00", "00:30", "12:00 AM - 12:30 AM"},
		{"12:00", "13:00", "12:00 PM - 1:00 PM"},
		{"23:30", "01:00", "11:30 PM - 1:00 AM"},
	}
	for _, c := range cases {
		if got := FormatTimeRange(c.start, c.end); got != c.want {
			t.Errorf("FormatTimeRange(%s, %s) = %q, want %q", c.start, c.end, got, c.want)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	t.Parallel()

	valid := []string{"00:00", "09:30", "23:59"}
	for _, v := range valid {
		if !IsValidClock(v) {
			t.Errorf("expected %q to be valid", v)
		}
	}
	invalid := []string{"24:00", "12:60", "noon", ""}
	for _, v := range invalid {
		if IsValidClock(v) {
			t.Errorf("expected %q to be invalid", v)
		}
	}
}
