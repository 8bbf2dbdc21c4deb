package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dayplanner/backend/domain"
	"github.com/dayplanner/backend/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

const taskColumns = `id, user_id, task, category, time_required, status, date, repeat,
	is_scheduled, scheduled_start, scheduled_end, created_at, completed_at, updated_at`

func (r *taskRepository) GetByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	const query = `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE id = $1 AND user_id = $2
	`
	row := r.pool.QueryRow(ctx, query, id, userID)
	return scanTask(row)
}

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	const query = `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE user_id = $1
	  AND ($2 = '' OR date = $2)
	  AND (NOT $3 OR date IS NULL)
	  AND ($4 = '' OR status = $4)
	ORDER BY date DESC NULLS LAST, created_at DESC
	LIMIT $5 OFFSET $6
	`
	rows, err := r.pool.Query(ctx, query,
		filter.UserID,
		filter.Date,
		filter.OnlyParked,
		string(filter.Status),
		clampLimit(filter.Limit),
		filter.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO tasks (id, user_id, task, category, time_required, status, date, repeat,
		is_scheduled, scheduled_start, scheduled_end, created_at, completed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, COALESCE($12, NOW()), $13)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.UserID,
		task.Task,
		task.Category,
		task.TimeRequired,
		task.Status,
		task.Date,
		task.Repeat,
		task.IsScheduled,
		task.ScheduledStart,
		task.ScheduledEnd,
		nullTime(task.CreatedAt),
		task.CompletedAt,
	).Scan(&task.CreatedAt, &task.UpdatedAt); err != nil {
		return nil, err
	}

	return task, nil
}

// CreateBatch persists the records of one recurrence expansion inside a
// single transaction so a partially created series never becomes visible.
func (r *taskRepository) CreateBatch(ctx context.Context, tasks []domain.Task) ([]domain.Task, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const query = `
	INSERT INTO tasks (id, user_id, task, category, time_required, status, date, repeat,
		is_scheduled, scheduled_start, scheduled_end, created_at, completed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, COALESCE($12, NOW()), $13)
	RETURNING created_at, updated_at
	`

	out := make([]domain.Task, len(tasks))
	for i := range tasks {
		task := tasks[i]
		if task.ID == "" {
			task.ID = uuid.NewString()
		}
		if err := tx.QueryRow(ctx, query,
			task.ID,
			task.UserID,
			task.Task,
			task.Category,
			task.TimeRequired,
			task.Status,
			task.Date,
			task.Repeat,
			task.IsScheduled,
			task.ScheduledStart,
			task.ScheduledEnd,
			nullTime(task.CreatedAt),
			task.CompletedAt,
		).Scan(&task.CreatedAt, &task.UpdatedAt); err != nil {
			return nil, err
		}
		out[i] = task
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE tasks
	SET task = $3,
		category = $4,
		time_required = $5,
		status = $6,
		date = $7,
		is_scheduled = $8,
		scheduled_start = $9,
		scheduled_end = $10,
		completed_at = $11,
		updated_at = NOW()
	WHERE id = $1 AND user_id = $2
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.UserID,
		task.Task,
		task.Category,
		task.TimeRequired,
		task.Status,
		task.Date,
		task.IsScheduled,
		task.ScheduledStart,
		task.ScheduledEnd,
		task.CompletedAt,
	).Scan(&task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		return err
	}

	return nil
}

// BatchUpdate applies bulk shift/park mutations atomically.
func (r *taskRepository) BatchUpdate(ctx context.Context, userID string, updates []repository.TaskUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const query = `
	UPDATE tasks
	SET date = $3, updated_at = NOW()
	WHERE id = $1 AND user_id = $2
	`

	for _, u := range updates {
		date := u.Date
		if u.ClearDate {
			date = nil
		}
		tag, err := tx.Exec(ctx, query, u.ID, userID, date)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrTaskNotFound
		}
	}

	return tx.Commit(ctx)
}

func (r *taskRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var task domain.Task

	if err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Task,
		&task.Category,
		&task.TimeRequired,
		&task.Status,
		&task.Date,
		&task.Repeat,
		&task.IsScheduled,
		&task.ScheduledStart,
		&task.ScheduledEnd,
		&task.CreatedAt,
		&task.CompletedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	return &task, nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 500 {
		return 500
	}
	return limit
}
