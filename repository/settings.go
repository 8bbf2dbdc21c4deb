package repository

import (
	"context"

	"github.com/dayplanner/backend/domain"
)

// SettingsRepository stores the per-user settings singleton. Get returns
// domain.ErrSettingsNotFound before the first save; Put overwrites the whole
// record.
type SettingsRepository interface {
	Get(ctx context.Context, userID string) (*domain.Settings, error)
	Put(ctx context.Context, settings *domain.Settings) error
}
