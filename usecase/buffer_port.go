package usecase

import (
	"context"

	"github.com/dayplanner/backend/domain"
)

// Buffered operation kinds.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// OperationBuffer abstracts the offline write buffer so use cases stay
// storage-agnostic. Writes that fail against primary storage are parked here
// and replayed later (last-writer-wins).
type OperationBuffer interface {
	BufferProfile(ctx context.Context, operation string, user *domain.User) error
	BufferTask(ctx context.Context, operation string, task *domain.Task) error
	BufferSettings(ctx context.Context, settings *domain.Settings) error
}
