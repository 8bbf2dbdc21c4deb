package planner

import (
	"testing"
	"time"

	"github.com/dayplanner/backend/domain"
)

func TestSortPrecedence(t *testing.T) {
	t.Parallel()

	t1 := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	nine, eight := "09:00", "08:00"

	tasks := []domain.Task{
		{ID: "done", Status: domain.StatusDone, CreatedAt: t1},
		{ID: "anytime", Status: domain.StatusPending, CreatedAt: t2},
		{ID: "sched-9", Status: domain.StatusPending, IsScheduled: true, ScheduledStart: &nine, CreatedAt: t1},
		{ID: "sched-8", Status: domain.StatusPending, IsScheduled: true, ScheduledStart: &eight, CreatedAt: t1},
	}

	got := Sort(tasks)
	want := []string{"sched-8", "sched-9", "anytime", "done"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s, want %s (full order %v)", i, got[i].ID, id, ids(got))
		}
	}
}

func TestSortNewestFirstAmongAnytime(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		{ID: "old", Status: domain.StatusPending, CreatedAt: base},
		{ID: "new", Status: domain.StatusPending, CreatedAt: base.Add(time.Minute)},
		{ID: "no-timestamp", Status: domain.StatusPending},
	}

	got := Sort(tasks)
	want := []string{"new", "old", "no-timestamp"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("got order %v, want %v", ids(got), want)
		}
	}
}

func TestSortIsStableAndIdempotent(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	// Three tasks fully tied under the comparator.
	tasks := []domain.Task{
		{ID: "a", Status: domain.StatusDone, CreatedAt: base},
		{ID: "b", Status: domain.StatusDone, CreatedAt: base},
		{ID: "c", Status: domain.StatusDone, CreatedAt: base},
	}

	once := Sort(tasks)
	twice := Sort(once)
	for i := range once {
		if once[i].ID != tasks[i].ID {
			t.Fatalf("stable sort reordered tied elements: %v", ids(once))
		}
		if twice[i].ID != once[i].ID {
			t.Fatalf("re-sorting changed order: %v vs %v", ids(once), ids(twice))
		}
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	nine := "09:00"
	tasks := []domain.Task{
		{ID: "done", Status: domain.StatusDone},
		{ID: "sched", Status: domain.StatusPending, IsScheduled: true, ScheduledStart: &nine},
	}
	_ = Sort(tasks)
	if tasks[0].ID != "done" || tasks[1].ID != "sched" {
		t.Fatalf("input slice was reordered: %v", ids(tasks))
	}
}

func ids(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].ID
	}
	return out
}
