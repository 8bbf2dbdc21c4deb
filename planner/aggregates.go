package planner

import (
	"strconv"

	"github.com/dayplanner/backend/domain"
)

// LimitState classifies a planned total against a configured limit.
type LimitState string

const (
	LimitUnder LimitState = "under"
	LimitAt    LimitState = "at"
	LimitOver  LimitState = "over"
)

// DaySummary is the planned/done minute totals for one date, split by
// category, with each bucket classified against the user's limits.
type DaySummary struct {
	Date            string     `json:"date"`
	WorkPlanned     int        `json:"workPlanned"`
	WorkDone        int        `json:"workDone"`
	PersonalPlanned int        `json:"personalPlanned"`
	PersonalDone    int        `json:"personalDone"`
	TotalPlanned    int        `json:"totalPlanned"`
	TotalDone       int        `json:"totalDone"`
	PendingCount    int        `json:"pendingCount"`
	DailyState      LimitState `json:"dailyState"`
	WorkState       LimitState `json:"workState"`
	PersonalState   LimitState `json:"personalState"`
}

// ChartDay is one column of the 7-day completed-minutes chart.
type ChartDay struct {
	Date         string `json:"date"`
	WorkDone     int    `json:"workDone"`
	PersonalDone int    `json:"personalDone"`
	Total        int    `json:"total"`
}

// WeekSummary is the rolling 7-day analytics view.
type WeekSummary struct {
	Days           []ChartDay `json:"days"`
	WorkTotal      int        `json:"workTotal"`
	PersonalTotal  int        `json:"personalTotal"`
	CompletionRate int        `json:"completionRate"`
	WorkSharePct   int        `json:"workSharePct"`
}

// Summarize folds one date's tasks into planned/done totals and classifies
// them against the settings limits. Parked tasks are never part of the input
// by contract (callers filter by date), but a nil-date defensive skip keeps
// the fold correct either way.
func Summarize(tasks []domain.Task, date string, settings *domain.Settings) DaySummary {
	s := DaySummary{Date: date}
	for i := range tasks {
		t := &tasks[i]
		if t.Date == nil || *t.Date != date {
			continue
		}
		done := 0
		if t.IsDone() {
			done = t.TimeRequired
		} else {
			s.PendingCount++
		}
		switch t.Category {
		case domain.CategoryWork:
			s.WorkPlanned += t.TimeRequired
			s.WorkDone += done
		case domain.CategoryPersonal:
			s.PersonalPlanned += t.TimeRequired
			s.PersonalDone += done
		}
	}
	s.TotalPlanned = s.WorkPlanned + s.PersonalPlanned
	s.TotalDone = s.WorkDone + s.PersonalDone

	if settings != nil {
		s.DailyState = classify(s.TotalPlanned, settings.DailyLimit)
		s.WorkState = classify(s.WorkPlanned, settings.WorkLimit)
		s.PersonalState = classify(s.PersonalPlanned, settings.PersonalLimit)
	}
	return s
}

func classify(planned, limit int) LimitState {
	switch {
	case limit <= 0 || planned < limit:
		return LimitUnder
	case planned == limit:
		return LimitAt
	default:
		return LimitOver
	}
}

// WeeklyChart folds the last seven days (ending today) into completed-minute
// columns plus the overall completion rate and work/life split.
func WeeklyChart(tasks []domain.Task, today string) WeekSummary {
	var week WeekSummary
	for offset := -6; offset <= 0; offset++ {
		date := AddDays(today, offset)
		day := ChartDay{Date: date}
		for i := range tasks {
			t := &tasks[i]
			if t.Date == nil || *t.Date != date || !t.IsDone() {
				continue
			}
			switch t.Category {
			case domain.CategoryWork:
				day.WorkDone += t.TimeRequired
			case domain.CategoryPersonal:
				day.PersonalDone += t.TimeRequired
			}
		}
		day.Total = day.WorkDone + day.PersonalDone
		week.WorkTotal += day.WorkDone
		week.PersonalTotal += day.PersonalDone
		week.Days = append(week.Days, day)
	}

	var total, completed int
	for i := range tasks {
		total++
		if tasks[i].IsDone() {
			completed++
		}
	}
	if total > 0 {
		week.CompletionRate = int(float64(completed)/float64(total)*100 + 0.5)
	}
	if sum := week.WorkTotal + week.PersonalTotal; sum > 0 {
		week.WorkSharePct = int(float64(week.WorkTotal)/float64(sum)*100 + 0.5)
	}
	return week
}

// maxStreakDays caps the backward scan of Streak.
const maxStreakDays = 365

// Streak counts consecutive prior days (strictly before today) whose task set
// is non-empty and fully Done, stopping at the first empty or incomplete day.
func Streak(tasks []domain.Task, today string) int {
	byDate := make(map[string][]*domain.Task)
	for i := range tasks {
		t := &tasks[i]
		if t.Date != nil {
			byDate[*t.Date] = append(byDate[*t.Date], t)
		}
	}

	streak := 0
	for offset := 1; offset <= maxStreakDays; offset++ {
		day := byDate[AddDays(today, -offset)]
		if len(day) == 0 {
			break
		}
		complete := true
		for _, t := range day {
			if !t.IsDone() {
				complete = false
				break
			}
		}
		if !complete {
			break
		}
		streak++
	}
	return streak
}

// FormatMinutes renders a minute count the way the UI shows durations:
// "45m", "2h", "1h 30m".
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	if minutes < 60 {
		return strconv.Itoa(minutes) + "m"
	}
	if minutes%60 == 0 {
		return strconv.Itoa(minutes/60) + "h"
	}
	return strconv.Itoa(minutes/60) + "h " + strconv.Itoa(minutes%60) + "m"
}
