package planner

import (
	"testing"

	"github.com/dayplanner/backend/domain"
)

func datedTask(date string, cat domain.Category, status domain.Status, minutes int) domain.Task {
	d := date
	return domain.Task{
		Date:         &d,
		Category:     cat,
		Status:       status,
		TimeRequired: minutes,
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	const day = "2024-06-10"
	tasks := []domain.Task{
		datedTask(day, domain.CategoryWork, domain.StatusDone, 60),
		datedTask(day, domain.CategoryPersonal, domain.StatusPending, 30),
		datedTask("2024-06-11", domain.CategoryWork, domain.StatusDone, 999), // other day
		{Category: domain.CategoryWork, Status: domain.StatusPending, TimeRequired: 999}, // parked
	}

	s := Summarize(tasks, day, domain.DefaultSettings("u1"))

	if s.WorkDone != 60 || s.WorkPlanned != 60 {
		t.Errorf("work: done=%d planned=%d", s.WorkDone, s.WorkPlanned)
	}
	if s.PersonalDone != 0 || s.PersonalPlanned != 30 {
		t.Errorf("personal: done=%d planned=%d", s.PersonalDone, s.PersonalPlanned)
	}
	if s.TotalPlanned != 90 || s.TotalDone != 60 {
		t.Errorf("total: planned=%d done=%d", s.TotalPlanned, s.TotalDone)
	}
	if s.PendingCount != 1 {
		t.Errorf("pending count = %d", s.PendingCount)
	}
	if s.DailyState != LimitUnder || s.WorkState != LimitUnder || s.PersonalState != LimitUnder {
		t.Errorf("limit states: %s/%s/%s", s.DailyState, s.WorkState, s.PersonalState)
	}
}

func TestSummarizeLimitStates(t *testing.T) {
	t.Parallel()

	settings := &domain.Settings{DailyLimit: 120, WorkLimit: 60, PersonalLimit: 30}
	const day = "2024-06-10"
	tasks := []domain.Task{
		datedTask(day, domain.CategoryWork, domain.StatusPending, 60),
		datedTask(day, domain.CategoryPersonal, domain.StatusPending, 45),
	}

	s := Summarize(tasks, day, settings)
	if s.WorkState != LimitAt {
		t.Errorf("work state = %s, want at", s.WorkState)
	}
	if s.PersonalState != LimitOver {
		t.Errorf("personal state = %s, want over", s.PersonalState)
	}
	if s.DailyState != LimitUnder {
		t.Errorf("daily state = %s, want under", s.DailyState)
	}
}

func TestWeeklyChart(t *testing.T) {
	t.Parallel()

	const today = "2024-06-10"
	tasks := []domain.Task{
		datedTask(today, domain.CategoryWork, domain.StatusDone, 60),
		datedTask("2024-06-09", domain.CategoryPersonal, domain.StatusDone, 30),
		datedTask("2024-06-09", domain.CategoryWork, domain.StatusPending, 45), // pending excluded
		datedTask("2024-06-03", domain.CategoryWork, domain.StatusDone, 15),    // 8 days back, outside window
	}

	week := WeeklyChart(tasks, today)
	if len(week.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week.Days))
	}
	if week.Days[0].Date != "2024-06-04" || week.Days[6].Date != today {
		t.Fatalf("window %s..%s", week.Days[0].Date, week.Days[6].Date)
	}
	if week.Days[6].WorkDone != 60 || week.Days[5].PersonalDone != 30 {
		t.Errorf("day totals wrong: %+v", week.Days)
	}
	if week.WorkTotal != 60 || week.PersonalTotal != 30 {
		t.Errorf("week totals: work=%d personal=%d", week.WorkTotal, week.PersonalTotal)
	}
	if week.CompletionRate != 75 { // 3 of 4 tasks done
		t.Errorf("completion rate = %d", week.CompletionRate)
	}
	if week.WorkSharePct != 67 {
		t.Errorf("work share = %d", week.WorkSharePct)
	}
}

func TestStreak(t *testing.T) {
	t.Parallel()

	const today = "2024-06-10"
	tasks := []domain.Task{
		datedTask("2024-06-09", domain.CategoryWork, domain.StatusDone, 30),
		datedTask("2024-06-08", domain.CategoryPersonal, domain.StatusDone, 30),
		datedTask("2024-06-08", domain.CategoryWork, domain.StatusDone, 30),
		// 2024-06-07 empty: streak stops here.
		datedTask("2024-06-06", domain.CategoryWork, domain.StatusDone, 30),
	}
	if got := Streak(tasks, today); got != 2 {
		t.Fatalf("streak = %d, want 2", got)
	}
}

func TestStreakStopsAtIncompleteDay(t *testing.T) {
	t.Parallel()

	const today = "2024-06-10"
	tasks := []domain.Task{
		datedTask("2024-06-09", domain.CategoryWork, domain.StatusDone, 30),
		datedTask("2024-06-08", domain.CategoryWork, domain.StatusPending, 30),
		datedTask("2024-06-07", domain.CategoryWork, domain.StatusDone, 30),
	}
	if got := Streak(tasks, today); got != 1 {
		t.Fatalf("streak = %d, want 1", got)
	}
}

func TestStreakIgnoresToday(t *testing.T) {
	t.Parallel()

	const today = "2024-06-10"
	// Today incomplete, yesterday complete: streak counts only prior days.
	tasks := []domain.Task{
		datedTask(today, domain.CategoryWork, domain.StatusPending, 30),
		datedTask("2024-06-09", domain.CategoryWork, domain.StatusDone, 30),
	}
	if got := Streak(tasks, today); got != 1 {
		t.Fatalf("streak = %d, want 1", got)
	}
}

func TestStreakEmptyHistory(t *testing.T) {
	t.Parallel()

	if got := Streak(nil, "2024-06-10"); got != 0 {
		t.Fatalf("streak = %d, want 0", got)
	}
}

func TestFormatMinutes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int
		want string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{120, "2h"},
	}
	for _, c := range cases {
		if got := FormatMinutes(c.in); got != c.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
