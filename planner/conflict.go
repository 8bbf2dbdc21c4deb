package planner

import "github.com/dayplanner/backend/domain"

// Overlaps reports whether the candidate start/end clock range collides with
// any already-scheduled task in others (tasks on the same date). Two ranges
// conflict iff newStart < existingEnd and newEnd > existingStart, so touching
// endpoints do not overlap. Done tasks and tasks without both schedule fields
// never block new scheduling.
//
// The result is informational; saving a conflicting task is always allowed.
func Overlaps(newStart, newEnd string, others []domain.Task) bool {
	ns, ne := ParseClock(newStart), ParseClock(newEnd)
	for i := range others {
		t := &others[i]
		if t.IsDone() || !t.HasSchedule() {
			continue
		}
		es, ee := ParseClock(*t.ScheduledStart), ParseClock(*t.ScheduledEnd)
		if ns < ee && ne > es {
			return true
		}
	}
	return false
}
