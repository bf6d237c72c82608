package services

import (
	"context"

	"task-manager/internal/domain"

	"github.com/google/uuid"
)

// TaskService handles task lifecycle operations on top of a store.
//
// Input failing validation is rejected with an AppError of type validation whose
// cause is a *validation.ValidationError. A missing task is an AppError of type not_found.
type TaskService interface {
	// Task CRUD operations
	CreateTask(ctx context.Context, in domain.TaskInput) (domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (domain.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, in domain.TaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error

	// Statistics
	CountTasks(ctx context.Context) (int, error)
}
