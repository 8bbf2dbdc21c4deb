package planner

import (
	"sort"

	"github.com/dayplanner/backend/domain"
)

// Sort returns the display order for a task collection without mutating the
// input. The order is a stable sort with this precedence:
//
//  1. Done tasks after all non-Done tasks.
//  2. Among non-Done tasks, scheduled ones before anytime ones.
//  3. Among scheduled non-Done tasks, earlier start first.
//  4. Remaining ties by CreatedAt descending; a zero CreatedAt sorts oldest.
//
// The result is a fresh projection recomputed from each delivered snapshot,
// never persisted.
func Sort(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return taskLess(&out[i], &out[j])
	})
	return out
}

func taskLess(a, b *domain.Task) bool {
	if a.IsDone() != b.IsDone() {
		return !a.IsDone()
	}

	if !a.IsDone() {
		aSched := a.IsScheduled && a.ScheduledStart != nil
		bSched := b.IsScheduled && b.ScheduledStart != nil
		if aSched != bSched {
			return aSched
		}
		if aSched && bSched {
			as, bs := ParseClock(*a.ScheduledStart), ParseClock(*b.ScheduledStart)
			if as != bs {
				return as < bs
			}
		}
	}

	// Newest first; zero timestamps behave as epoch 0.
	return a.CreatedAt.After(b.CreatedAt)
}
