package planner

import (
	"time"

	"github.com/dayplanner/backend/domain"
)

// maxOccurrences is a hard safety ceiling on expansion, whatever the
// termination rule says.
const maxOccurrences = 100

// RepeatRule is the transient recurrence request attached to a task draft.
// It is consumed by Expand at creation time and never persisted; each
// generated occurrence becomes an independent record.
//
// Exactly one termination applies: a positive Count (inclusive of the base
// date) or a non-empty EndDate (inclusive upper bound). When both are set the
// earlier stop wins.
type RepeatRule struct {
	Cadence domain.Cadence `json:"cadence"`
	Count   int            `json:"count,omitempty"`
	EndDate string         `json:"endDate,omitempty"`
}

// Expand turns a base date and a repeat rule into the ordered list of
// occurrence dates. The first element is always the base date and each
// subsequent element is strictly after the previous one.
//
// Every occurrence is derived from the base date, not from its predecessor:
// monthly adds i months with calendar normalization, so Jan 31 + 1 month
// rolls over past February instead of clamping.
func Expand(base string, rule RepeatRule) []string {
	dates := []string{base}
	if rule.Cadence == domain.RepeatNone || rule.Cadence == "" {
		return dates
	}

	start := ParseDate(base)
	var end time.Time
	if rule.EndDate != "" {
		end = ParseDate(rule.EndDate)
	}

	for i := 1; i < maxOccurrences; i++ {
		if rule.Count > 0 && len(dates) >= rule.Count {
			break
		}

		var next time.Time
		switch rule.Cadence {
		case domain.RepeatDaily:
			next = start.AddDate(0, 0, i)
		case domain.RepeatAlternate:
			next = start.AddDate(0, 0, i*2)
		case domain.RepeatWeekly:
			next = start.AddDate(0, 0, i*7)
		case domain.RepeatFortnightly:
			next = start.AddDate(0, 0, i*14)
		case domain.RepeatMonthly:
			next = start.AddDate(0, i, 0)
		default:
			return dates
		}

		if !end.IsZero() && next.After(end) {
			break
		}
		dates = append(dates, FormatDate(next))
	}
	return dates
}
