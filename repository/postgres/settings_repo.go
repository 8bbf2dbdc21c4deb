package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dayplanner/backend/domain"
	"github.com/dayplanner/backend/repository"
)

type settingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository returns a Postgres-backed settings repository.
func NewSettingsRepository(pool *pgxpool.Pool) repository.SettingsRepository {
	return &settingsRepository{pool: pool}
}

func (r *settingsRepository) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	const query = `
	SELECT user_id, daily_limit, work_limit, personal_limit,
		work_start, work_end, personal_start, personal_end,
		focus_start, focus_end, break_minutes, slot_minutes, updated_at
	FROM settings
	WHERE user_id = $1
	`
	row := r.pool.QueryRow(ctx, query, userID)

	var s domain.Settings
	if err := row.Scan(
		&s.UserID,
		&s.DailyLimit,
		&s.WorkLimit,
		&s.PersonalLimit,
		&s.WorkStart,
		&s.WorkEnd,
		&s.PersonalStart,
		&s.PersonalEnd,
		&s.FocusStart,
		&s.FocusEnd,
		&s.BreakMinutes,
		&s.SlotMinutes,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}

	return &s, nil
}

// Put replaces the whole settings record; fields are never merged.
func (r *settingsRepository) Put(ctx context.Context, settings *domain.Settings) error {
	if settings == nil || settings.UserID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO settings (user_id, daily_limit, work_limit, personal_limit,
		work_start, work_end, personal_start, personal_end,
		focus_start, focus_end, break_minutes, slot_minutes, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
	ON CONFLICT (user_id) DO UPDATE
	SET daily_limit = EXCLUDED.daily_limit,
		work_limit = EXCLUDED.work_limit,
		personal_limit = EXCLUDED.personal_limit,
		work_start = EXCLUDED.work_start,
		work_end = EXCLUDED.work_end,
		personal_start = EXCLUDED.personal_start,
		personal_end = EXCLUDED.personal_end,
		focus_start = EXCLUDED.focus_start,
		focus_end = EXCLUDED.focus_end,
		break_minutes = EXCLUDED.break_minutes,
		slot_minutes = EXCLUDED.slot_minutes,
		updated_at = NOW()
	RETURNING updated_at
	`

	return r.pool.QueryRow(ctx, query,
		settings.UserID,
		settings.DailyLimit,
		settings.WorkLimit,
		settings.PersonalLimit,
		settings.WorkStart,
		settings.WorkEnd,
		settings.PersonalStart,
		settings.PersonalEnd,
		settings.FocusStart,
		settings.FocusEnd,
		settings.BreakMinutes,
		settings.SlotMinutes,
	).Scan(&settings.UpdatedAt)
}
