package domain

import "time"

// Category splits tasks into the two planning buckets.
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
)

// Status is the completion state of a task.
type Status string

const (
	StatusPending Status = "Pending"
	StatusDone    Status = "Done"
)

// Cadence is the repeat interval recorded on each generated instance.
// Instances are independent records; the cadence is informational after creation.
type Cadence string

const (
	RepeatNone        Cadence = "none"
	RepeatDaily       Cadence = "daily"
	RepeatAlternate   Cadence = "alternate"
	RepeatWeekly      Cadence = "weekly"
	RepeatFortnightly Cadence = "fortnightly"
	RepeatMonthly     Cadence = "monthly"
)

// Task is the sole persisted planning entity. Date is nil for parked tasks.
// ScheduledEnd is always derived from ScheduledStart plus TimeRequired, never
// edited independently.
type Task struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	Task           string     `json:"task"`
	Category       Category   `json:"category"`
	TimeRequired   int        `json:"timeRequired"`
	Status         Status     `json:"status"`
	Date           *string    `json:"date,omitempty"`
	Repeat         Cadence    `json:"repeat"`
	IsScheduled    bool       `json:"isScheduled"`
	ScheduledStart *string    `json:"scheduledStartTime,omitempty"`
	ScheduledEnd   *string    `json:"scheduledEndTime,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (t *Task) IsDone() bool {
	return t != nil && t.Status == StatusDone
}

// IsParked reports whether the task sits on no calendar date.
func (t *Task) IsParked() bool {
	return t != nil && t.Date == nil
}

// HasSchedule reports whether both clock endpoints are present.
func (t *Task) HasSchedule() bool {
	return t != nil && t.IsScheduled && t.ScheduledStart != nil && t.ScheduledEnd != nil
}

// ValidCategory reports whether c is one of the two known buckets.
func ValidCategory(c Category) bool {
	return c == CategoryWork || c == CategoryPersonal
}

// ValidCadence reports whether c is a known repeat cadence.
func ValidCadence(c Cadence) bool {
	switch c {
	case RepeatNone, RepeatDaily, RepeatAlternate, RepeatWeekly, RepeatFortnightly, RepeatMonthly:
		return true
	}
	return false
}
