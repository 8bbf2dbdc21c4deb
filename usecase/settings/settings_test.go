package settings

import (
	"context"
	"sync"
	"testing"

	"github.com/dayplanner/backend/domain"
)

type fakeSettingsRepo struct {
	mu    sync.Mutex
	store map[string]domain.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{store: make(map[string]domain.Settings)}
}

func (r *fakeSettingsRepo) Get(_ context.Context, userID string) (*domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.store[userID]
	if !ok {
		return nil, domain.ErrSettingsNotFound
	}
	out := s
	return &out, nil
}

func (r *fakeSettingsRepo) Put(_ context.Context, settings *domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[settings.UserID] = *settings
	return nil
}

func TestGetSettingsFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	uc := New(newFakeSettingsRepo(), nil, nil)

	s, err := uc.GetSettings(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetSettings returned error: %v", err)
	}
	defaults := domain.DefaultSettings("u1")
	if *s != *defaults {
		t.Fatalf("got %+v, want defaults %+v", s, defaults)
	}
}

func TestSaveSettingsOverwritesWholesale(t *testing.T) {
	t.Parallel()

	repo := newFakeSettingsRepo()
	uc := New(repo, nil, nil)

	s := domain.DefaultSettings("u1")
	s.DailyLimit = 300
	s.WorkStart = "08:00"
	if _, err := uc.SaveSettings(context.Background(), s); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := uc.GetSettings(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.DailyLimit != 300 || got.WorkStart != "08:00" {
		t.Fatalf("settings not overwritten: %+v", got)
	}
}

func TestSaveSettingsValidation(t *testing.T) {
	t.Parallel()

	uc := New(newFakeSettingsRepo(), nil, nil)

	cases := []struct {
		name   string
		mutate func(*domain.Settings)
	}{
		{"negative limit", func(s *domain.Settings) { s.DailyLimit = -1 }},
		{"bad window", func(s *domain.Settings) { s.WorkStart = "25:00" }},
		{"negative slot", func(s *domain.Settings) { s.SlotMinutes = -5 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := domain.DefaultSettings("u1")
			c.mutate(s)
			if _, err := uc.SaveSettings(context.Background(), s); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
				t.Fatalf("expected INVALID, got %v", err)
			}
		})
	}
}
