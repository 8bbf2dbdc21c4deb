package task

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dayplanner/backend/domain"
	"github.com/dayplanner/backend/planner"
	"github.com/dayplanner/backend/repository"
	"github.com/dayplanner/backend/usecase"
)

// CreateResult carries the persisted records of one create request plus the
// non-blocking conflict warning for the requested schedule window.
type CreateResult struct {
	Tasks    []domain.Task `json:"tasks"`
	Conflict bool          `json:"conflict"`
}

type UseCase struct {
	tasks  repository.TaskRepository
	buffer usecase.OperationBuffer
	logger *zap.Logger
	now    func() time.Time
}

func New(tasks repository.TaskRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		buffer: buffer,
		logger: logger,
		now:    time.Now,
	}
}

// ListTasks returns the filtered collection in display order.
func (uc *UseCase) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	tasks, err := uc.tasks.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return planner.Sort(tasks), nil
}

// CreateTasks validates a draft, expands its repeat rule into dated records
// and persists them as one batch. The repeat rule itself is never stored.
// A schedule conflict on the base date is reported but never blocks the save.
func (uc *UseCase) CreateTasks(ctx context.Context, draft *domain.Task, rule planner.RepeatRule) (*CreateResult, error) {
	if err := uc.validateDraft(draft, rule); err != nil {
		return nil, err
	}

	draft.Status = domain.StatusPending
	draft.CompletedAt = nil
	draft.CreatedAt = uc.now()
	draft.Repeat = rule.Cadence
	if draft.Repeat == "" {
		draft.Repeat = domain.RepeatNone
	}
	uc.deriveSchedule(draft)

	conflict := uc.probeConflict(ctx, draft)

	records := []domain.Task{*draft}
	if draft.Date != nil {
		dates := planner.Expand(*draft.Date, rule)
		records = make([]domain.Task, len(dates))
		for i, date := range dates {
			rec := *draft
			d := date
			rec.Date = &d
			records[i] = rec
		}
	}

	created, err := uc.tasks.CreateBatch(ctx, records)
	if err != nil {
		if uc.bufferAll(ctx, usecase.OperationCreate, records) {
			return &CreateResult{Tasks: records, Conflict: conflict}, nil
		}
		return nil, err
	}

	return &CreateResult{Tasks: created, Conflict: conflict}, nil
}

// GetTask returns one task scoped to its owner.
func (uc *UseCase) GetTask(ctx context.Context, userID, id string) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, userID, id)
}

// UpdateTask edits a single instance. Sibling occurrences of a repeating
// task are independent records and stay untouched.
func (uc *UseCase) UpdateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := uc.validateDraft(task, planner.RepeatRule{}); err != nil {
		return nil, err
	}
	uc.deriveSchedule(task)

	if err := uc.tasks.Update(ctx, task); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, err
		}
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, task) {
			return task, nil
		}
		return nil, err
	}
	return task, nil
}

// ToggleTask flips Pending/Done and maintains CompletedAt.
func (uc *UseCase) ToggleTask(ctx context.Context, userID, id string) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if task.IsDone() {
		task.Status = domain.StatusPending
		task.CompletedAt = nil
	} else {
		task.Status = domain.StatusDone
		completed := uc.now()
		task.CompletedAt = &completed
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, task) {
			return task, nil
		}
		return nil, err
	}
	return task, nil
}

// ShiftTasks moves pending tasks from one date to another in a single atomic
// batch. When ids is empty every non-Done task on the date moves; Done tasks
// never move.
func (uc *UseCase) ShiftTasks(ctx context.Context, userID, fromDate, toDate string, ids []string) (int, error) {
	if !planner.IsValidDate(fromDate) || !planner.IsValidDate(toDate) {
		return 0, domain.NewError(domain.ErrCodeInvalid, "malformed date")
	}

	onDate, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: userID, Date: fromDate})
	if err != nil {
		return 0, err
	}

	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	var updates []repository.TaskUpdate
	for i := range onDate {
		t := &onDate[i]
		if t.IsDone() {
			continue
		}
		if len(ids) > 0 && !selected[t.ID] {
			continue
		}
		date := toDate
		updates = append(updates, repository.TaskUpdate{ID: t.ID, Date: &date})
	}

	if len(updates) == 0 {
		return 0, nil
	}
	if err := uc.tasks.BatchUpdate(ctx, userID, updates); err != nil {
		return 0, err
	}
	return len(updates), nil
}

// ParkTasks clears the date on the given tasks, removing them from every
// daily view and aggregate until they are rescheduled.
func (uc *UseCase) ParkTasks(ctx context.Context, userID string, ids []string) error {
	if len(ids) == 0 {
		return domain.NewError(domain.ErrCodeInvalid, "no task ids given")
	}
	updates := make([]repository.TaskUpdate, len(ids))
	for i, id := range ids {
		updates[i] = repository.TaskUpdate{ID: id, ClearDate: true}
	}
	return uc.tasks.BatchUpdate(ctx, userID, updates)
}

func (uc *UseCase) DeleteTask(ctx context.Context, userID, id string) error {
	if err := uc.tasks.Delete(ctx, userID, id); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return err
		}
		task := &domain.Task{ID: id, UserID: userID}
		if uc.shouldBuffer(ctx, usecase.OperationDelete, task) {
			return nil
		}
		return err
	}
	return nil
}

// CheckConflict probes whether a candidate window overlaps a scheduled
// pending task on the date.
func (uc *UseCase) CheckConflict(ctx context.Context, userID, date, start, end string) (bool, error) {
	if !planner.IsValidDate(date) || !planner.IsValidClock(start) || !planner.IsValidClock(end) {
		return false, domain.NewError(domain.ErrCodeInvalid, "malformed date or time")
	}
	onDate, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: userID, Date: date})
	if err != nil {
		return false, err
	}
	return planner.Overlaps(start, end, onDate), nil
}

func (uc *UseCase) validateDraft(task *domain.Task, rule planner.RepeatRule) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}
	if strings.TrimSpace(task.Task) == "" {
		return domain.ErrEmptyTaskName
	}
	if task.TimeRequired <= 0 {
		return domain.NewError(domain.ErrCodeInvalid, "time required must be positive")
	}
	if !domain.ValidCategory(task.Category) {
		return domain.NewError(domain.ErrCodeInvalid, "unknown category")
	}
	if task.Date != nil && !planner.IsValidDate(*task.Date) {
		return domain.NewError(domain.ErrCodeInvalid, "malformed date")
	}
	if task.IsScheduled {
		if task.Date == nil {
			return domain.NewError(domain.ErrCodeInvalid, "scheduled task needs a date")
		}
		if task.ScheduledStart == nil || !planner.IsValidClock(*task.ScheduledStart) {
			return domain.NewError(domain.ErrCodeInvalid, "malformed start time")
		}
	}
	if rule.Cadence != "" && !domain.ValidCadence(rule.Cadence) {
		return domain.NewError(domain.ErrCodeInvalid, "unknown repeat cadence")
	}
	if rule.EndDate != "" && !planner.IsValidDate(rule.EndDate) {
		return domain.NewError(domain.ErrCodeInvalid, "malformed repeat end date")
	}
	return nil
}

// deriveSchedule recomputes the end time from start plus duration, or strips
// the clock fields when the task is not scheduled. The end time is always
// derived, never taken from the caller.
func (uc *UseCase) deriveSchedule(task *domain.Task) {
	if task.IsScheduled && task.ScheduledStart != nil {
		end := planner.EndTime(*task.ScheduledStart, task.TimeRequired)
		task.ScheduledEnd = &end
		return
	}
	task.IsScheduled = false
	task.ScheduledStart = nil
	task.ScheduledEnd = nil
}

func (uc *UseCase) probeConflict(ctx context.Context, draft *domain.Task) bool {
	if !draft.HasSchedule() || draft.Date == nil {
		return false
	}
	onDate, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: draft.UserID, Date: *draft.Date})
	if err != nil {
		uc.logger.Warn("conflict probe failed", zap.Error(err))
		return false
	}
	return planner.Overlaps(*draft.ScheduledStart, *draft.ScheduledEnd, onDate)
}

func (uc *UseCase) bufferAll(ctx context.Context, operation string, tasks []domain.Task) bool {
	for i := range tasks {
		if !uc.shouldBuffer(ctx, operation, &tasks[i]) {
			return false
		}
	}
	return true
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, task *domain.Task) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferTask(ctx, operation, task); err != nil {
		uc.logger.Error("failed to buffer task operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("task operation buffered", zap.String("operation", operation))
	return true
}
