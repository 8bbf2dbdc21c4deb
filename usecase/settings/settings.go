package settings

import (
	"context"

	"go.uber.org/zap"

	"github.com/dayplanner/backend/domain"
	"github.com/dayplanner/backend/planner"
	"github.com/dayplanner/backend/repository"
	"github.com/dayplanner/backend/usecase"
)

type UseCase struct {
	settings repository.SettingsRepository
	buffer   usecase.OperationBuffer
	logger   *zap.Logger
}

func New(settings repository.SettingsRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		settings: settings,
		buffer:   buffer,
		logger:   logger,
	}
}

// GetSettings returns the user's settings, falling back to defaults before
// the first save. The defaults are not persisted on read; they materialize
// on the first explicit save.
func (uc *UseCase) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	s, err := uc.settings.Get(ctx, userID)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return domain.DefaultSettings(userID), nil
		}
		return nil, err
	}
	return s, nil
}

// SaveSettings validates and overwrites the whole record.
func (uc *UseCase) SaveSettings(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	if err := validate(s); err != nil {
		return nil, err
	}

	if err := uc.settings.Put(ctx, s); err != nil {
		if uc.buffer != nil {
			if bufErr := uc.buffer.BufferSettings(ctx, s); bufErr != nil {
				uc.logger.Error("failed to buffer settings update", zap.Error(bufErr))
				return nil, err
			}
			uc.logger.Warn("settings update buffered due to repository error", zap.Error(err))
			return s, nil
		}
		return nil, err
	}
	return s, nil
}

func validate(s *domain.Settings) error {
	if s == nil || s.UserID == "" {
		return domain.ErrInvalidPayload
	}
	if s.DailyLimit < 0 || s.WorkLimit < 0 || s.PersonalLimit < 0 {
		return domain.NewError(domain.ErrCodeInvalid, "limits must not be negative")
	}
	for _, clock := range []string{s.WorkStart, s.WorkEnd, s.PersonalStart, s.PersonalEnd, s.FocusStart, s.FocusEnd} {
		if clock != "" && !planner.IsValidClock(clock) {
			return domain.NewError(domain.ErrCodeInvalid, "malformed time window")
		}
	}
	if s.SlotMinutes < 0 || s.BreakMinutes < 0 {
		return domain.NewError(domain.ErrCodeInvalid, "durations must not be negative")
	}
	return nil
}
