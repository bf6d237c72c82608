package store

import (
	"context"

	"task-manager/internal/domain"
	"task-manager/internal/errors"

	"github.com/google/uuid"
)

// TaskStore is the authoritative collection of tasks keyed by a store-generated ID.
//
// A missing task is reported through the boolean result and never as an error.
// Every operation checks ctx on entry and, when it is already done, returns a
// canceled AppError without touching stored state. Returned tasks are copies.
type TaskStore interface {
	// Create normalizes the input, assigns a fresh ID and stores the task.
	Create(ctx context.Context, in domain.TaskInput) (domain.Task, error)

	// GetAll returns every live task in insertion order. An empty store yields an empty, non-nil slice.
	GetAll(ctx context.Context) ([]domain.Task, error)

	// GetByID returns the task with the given ID, or false when there is none.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Task, bool, error)

	// Update replaces every mutable field of the task with the normalized input.
	// It returns false and changes nothing when the task does not exist.
	Update(ctx context.Context, id uuid.UUID, in domain.TaskInput) (domain.Task, bool, error)

	// Delete removes the task and reports whether anything was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Close releases resources held by the store.
	Close() error
}

// CheckContext returns a canceled AppError when ctx is already done.
func CheckContext(ctx context.Context, operation string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewCanceledError(operation, err)
	}
	return nil
}
