package analytics

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dayplanner/backend/domain"
	"github.com/dayplanner/backend/repository"
)

type fakeTaskRepo struct {
	tasks []domain.Task
}

func (r *fakeTaskRepo) GetByID(context.Context, string, string) (*domain.Task, error) {
	return nil, domain.ErrTaskNotFound
}

func (r *fakeTaskRepo) List(_ context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.tasks {
		if t.UserID != filter.UserID {
			continue
		}
		if filter.Date != "" && (t.Date == nil || *t.Date != filter.Date) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.tasks = append(r.tasks, *task)
	return task, nil
}

func (r *fakeTaskRepo) CreateBatch(_ context.Context, tasks []domain.Task) ([]domain.Task, error) {
	r.tasks = append(r.tasks, tasks...)
	return tasks, nil
}

func (r *fakeTaskRepo) Update(context.Context, *domain.Task) error { return nil }

func (r *fakeTaskRepo) BatchUpdate(context.Context, string, []repository.TaskUpdate) error {
	return nil
}

func (r *fakeTaskRepo) Delete(context.Context, string, string) error { return nil }

type fakeSettingsRepo struct {
	settings *domain.Settings
}

func (r *fakeSettingsRepo) Get(context.Context, string) (*domain.Settings, error) {
	if r.settings == nil {
		return nil, domain.ErrSettingsNotFound
	}
	return r.settings, nil
}

func (r *fakeSettingsRepo) Put(_ context.Context, s *domain.Settings) error {
	r.settings = s
	return nil
}

func dated(userID, date string, cat domain.Category, status domain.Status, minutes int) domain.Task {
	d := date
	return domain.Task{
		UserID:       userID,
		Date:         &d,
		Category:     cat,
		Status:       status,
		TimeRequired: minutes,
	}
}

func newAnalytics(tasks []domain.Task, settings *domain.Settings) *UseCase {
	uc := New(&fakeTaskRepo{tasks: tasks}, &fakeSettingsRepo{settings: settings}, nil)
	uc.now = func() time.Time { return time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local) }
	return uc
}

func TestDaySummaryUsesDefaultLimitsWhenUnset(t *testing.T) {
	t.Parallel()

	uc := newAnalytics([]domain.Task{
		dated("u1", "2024-06-10", domain.CategoryWork, domain.StatusDone, 60),
		dated("u1", "2024-06-10", domain.CategoryPersonal, domain.StatusPending, 30),
	}, nil)

	s, err := uc.DaySummary(context.Background(), "u1", "2024-06-10")
	if err != nil {
		t.Fatalf("DaySummary returned error: %v", err)
	}
	if s.WorkDone != 60 || s.WorkPlanned != 60 || s.PersonalDone != 0 || s.PersonalPlanned != 30 {
		t.Fatalf("summary = %+v", s)
	}
}

func TestDaySummaryRejectsMalformedDate(t *testing.T) {
	t.Parallel()

	uc := newAnalytics(nil, nil)
	if _, err := uc.DaySummary(context.Background(), "u1", "June 10"); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected INVALID, got %v", err)
	}
}

func TestWeeklyWindowEndsToday(t *testing.T) {
	t.Parallel()

	uc := newAnalytics([]domain.Task{
		dated("u1", "2024-06-10", domain.CategoryWork, domain.StatusDone, 45),
	}, nil)

	week, err := uc.Weekly(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Weekly returned error: %v", err)
	}
	if len(week.Days) != 7 || week.Days[6].Date != "2024-06-10" {
		t.Fatalf("window = %+v", week.Days)
	}
	if week.WorkTotal != 45 {
		t.Fatalf("work total = %d", week.WorkTotal)
	}
}

func TestStreakCountsPriorCompleteDays(t *testing.T) {
	t.Parallel()

	uc := newAnalytics([]domain.Task{
		dated("u1", "2024-06-09", domain.CategoryWork, domain.StatusDone, 30),
		dated("u1", "2024-06-08", domain.CategoryWork, domain.StatusDone, 30),
	}, nil)

	streak, err := uc.Streak(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Streak returned error: %v", err)
	}
	if streak != 2 {
		t.Fatalf("streak = %d, want 2", streak)
	}
}

func TestExportFormats(t *testing.T) {
	t.Parallel()

	uc := newAnalytics([]domain.Task{
		dated("u1", "2024-06-10", domain.CategoryWork, domain.StatusPending, 45),
	}, nil)

	csv, contentType, err := uc.Export(context.Background(), "u1", "csv")
	if err != nil {
		t.Fatalf("csv export failed: %v", err)
	}
	if contentType != "text/csv" || !strings.HasPrefix(csv, "Date,Task,") {
		t.Fatalf("csv = %q (%s)", csv, contentType)
	}

	tsv, contentType, err := uc.Export(context.Background(), "u1", "tsv")
	if err != nil {
		t.Fatalf("tsv export failed: %v", err)
	}
	if contentType != "text/tab-separated-values" || !strings.Contains(tsv, "\t") {
		t.Fatalf("tsv = %q (%s)", tsv, contentType)
	}

	if _, _, err := uc.Export(context.Background(), "u1", "xml"); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected INVALID for unknown format, got %v", err)
	}
}
