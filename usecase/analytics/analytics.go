// Package analytics projects the task collection into the derived views the
// UI renders: daily totals against limits, the 7-day chart and the
// completion streak. Nothing here is persisted; every call recomputes from
// the live collection.
package analytics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dayplanner/backend/domain"
	"github.com/dayplanner/backend/planner"
	"github.com/dayplanner/backend/repository"
)

type UseCase struct {
	tasks    repository.TaskRepository
	settings repository.SettingsRepository
	logger   *zap.Logger
	now      func() time.Time
}

func New(tasks repository.TaskRepository, settings repository.SettingsRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
}

// DaySummary folds one date's tasks into planned/done totals classified
// against the user's limits.
func (uc *UseCase) DaySummary(ctx context.Context, userID, date string) (*planner.DaySummary, error) {
	if !planner.IsValidDate(date) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "malformed date")
	}

	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: userID, Date: date})
	if err != nil {
		return nil, err
	}

	settings, err := uc.settings.Get(ctx, userID)
	if err != nil {
		if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, err
		}
		settings = domain.DefaultSettings(userID)
	}

	s := planner.Summarize(tasks, date, settings)
	return &s, nil
}

// Weekly builds the rolling 7-day completed-minutes chart ending today.
func (uc *UseCase) Weekly(ctx context.Context, userID string) (*planner.WeekSummary, error) {
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: userID})
	if err != nil {
		return nil, err
	}
	week := planner.WeeklyChart(tasks, planner.Today(uc.now()))
	return &week, nil
}

// Streak counts consecutive fully-completed days before today.
func (uc *UseCase) Streak(ctx context.Context, userID string) (int, error) {
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: userID})
	if err != nil {
		return 0, err
	}
	return planner.Streak(tasks, planner.Today(uc.now())), nil
}

// Export renders the user's whole collection in display order as CSV or TSV.
func (uc *UseCase) Export(ctx context.Context, userID, format string) (string, string, error) {
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: userID})
	if err != nil {
		return "", "", err
	}
	sorted := planner.Sort(tasks)

	switch format {
	case "tsv":
		return planner.ExportTSV(sorted), "text/tab-separated-values", nil
	case "", "csv":
		return planner.ExportCSV(sorted), "text/csv", nil
	default:
		return "", "", domain.NewError(domain.ErrCodeInvalid, "unknown export format")
	}
}
