package planner

import (
	"testing"

	"github.com/dayplanner/backend/domain"
)

func scheduledTask(start, end string, status domain.Status) domain.Task {
	return domain.Task{
		Status:         status,
		IsScheduled:    true,
		ScheduledStart: &start,
		ScheduledEnd:   &end,
	}
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	existing := []domain.Task{scheduledTask("09:00", "10:00", domain.StatusPending)}

	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"inside", "09:15", "09:45", true},
		{"straddles end", "09:30", "10:30", true},
		{"straddles start", "08:30", "09:30", true},
		{"covers", "08:00", "11:00", true},
		{"touching after", "10:00", "11:00", false},
		{"touching before", "08:00", "09:00", false},
		{"disjoint", "11:00", "12:00", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Overlaps(c.start, c.end, existing); got != c.want {
				t.Fatalf("Overlaps(%s, %s) = %v, want %v", c.start, c.end, got, c.want)
			}
		})
	}
}

func TestOverlapsIgnoresDoneTasks(t *testing.T) {
	t.Parallel()

	existing := []domain.Task{scheduledTask("09:00", "10:00", domain.StatusDone)}
	if Overlaps("09:30", "10:30", existing) {
		t.Fatal("done task should not block scheduling")
	}
}

func TestOverlapsIgnoresUnscheduledTasks(t *testing.T) {
	t.Parallel()

	existing := []domain.Task{
		{Status: domain.StatusPending},                       // anytime task
		{Status: domain.StatusPending, IsScheduled: true},    // flag set but no clock fields
	}
	if Overlaps("00:00", "23:59", existing) {
		t.Fatal("unscheduled tasks should not block scheduling")
	}
}

func TestOverlapsEmptySet(t *testing.T) {
	t.Parallel()

	if Overlaps("09:00", "10:00", nil) {
		t.Fatal("no existing tasks should never conflict")
	}
}
