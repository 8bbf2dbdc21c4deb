package repository

import (
	"context"

	"github.com/dayplanner/backend/domain"
)

// TaskFilter narrows a task listing. Date and OnlyParked are mutually
// exclusive; an empty filter returns the user's whole collection.
type TaskFilter struct {
	UserID     string
	Date       string
	OnlyParked bool
	Status     domain.Status
	Limit      int
	Offset     int
}

// TaskUpdate is one entry of a batch mutation. Nil fields are left untouched;
// ClearDate parks the task regardless of Date.
type TaskUpdate struct {
	ID        string
	Date      *string
	ClearDate bool
}

type TaskRepository interface {
	GetByID(ctx context.Context, userID, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	CreateBatch(ctx context.Context, tasks []domain.Task) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	BatchUpdate(ctx context.Context, userID string, updates []TaskUpdate) error
	Delete(ctx context.Context, userID, id string) error
}
