package services

import (
	"context"
	"log/slog"
	"time"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/store"
	"task-manager/internal/validation"

	"github.com/google/uuid"
)

// Option configures the task service
type Option func(*taskServiceImpl)

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(t *taskServiceImpl) {
		t.logger = logger
	}
}

// WithClock replaces the source of "now" used for the due date check
func WithClock(now func() time.Time) Option {
	return func(t *taskServiceImpl) {
		t.now = now
	}
}

// WithTaskValidator replaces the default validator, e.g. one built from configuration
func WithTaskValidator(v *validation.TaskValidator) Option {
	return func(t *taskServiceImpl) {
		t.taskValidator = v
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store         store.TaskStore
	taskValidator *validation.TaskValidator
	logger        *slog.Logger
	now           func() time.Time
}

// NewTaskService creates a new TaskService instance
func NewTaskService(s store.TaskStore, opts ...Option) TaskService {
	t := &taskServiceImpl{
		store:         s,
		taskValidator: validation.NewTaskValidator(),
		logger:        logging.Discard(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// today returns the current UTC calendar date
func (t *taskServiceImpl) today() time.Time {
	return domain.DateOf(t.now().UTC())
}

// CreateTask validates the input and stores a new task.
// The due date must not be before today.
func (t *taskServiceImpl) CreateTask(ctx context.Context, in domain.TaskInput) (domain.Task, error) {
	if err := t.taskValidator.ValidateForCreation(in, t.today()); err != nil {
		return domain.Task{}, errors.NewValidationError("invalid task", err)
	}

	task, err := t.store.Create(ctx, in)
	if err != nil {
		return domain.Task{}, t.logFailure(ctx, "create task", err)
	}

	t.logger.InfoContext(ctx, "task created", "task_id", task.ID.String(), "priority", task.Priority.String())
	return task, nil
}

// ListTasks returns all tasks in insertion order
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := t.store.GetAll(ctx)
	if err != nil {
		return nil, t.logFailure(ctx, "list tasks", err)
	}
	return tasks, nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	task, found, err := t.store.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, t.logFailure(ctx, "get task", err)
	}
	if !found {
		return domain.Task{}, errors.NewNotFoundError("task", id.String())
	}
	return task, nil
}

// UpdateTask replaces every mutable field of an existing task.
// The due date is not checked against today.
func (t *taskServiceImpl) UpdateTask(ctx context.Context, id uuid.UUID, in domain.TaskInput) (domain.Task, error) {
	if err := t.taskValidator.ValidateForUpdate(in); err != nil {
		return domain.Task{}, errors.NewValidationError("invalid task", err)
	}

	task, found, err := t.store.Update(ctx, id, in)
	if err != nil {
		return domain.Task{}, t.logFailure(ctx, "update task", err)
	}
	if !found {
		return domain.Task{}, errors.NewNotFoundError("task", id.String())
	}

	t.logger.InfoContext(ctx, "task updated", "task_id", id.String(), "status", task.Status.String())
	return task, nil
}

// DeleteTask removes a task
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) error {
	deleted, err := t.store.Delete(ctx, id)
	if err != nil {
		return t.logFailure(ctx, "delete task", err)
	}
	if !deleted {
		return errors.NewNotFoundError("task", id.String())
	}

	t.logger.InfoContext(ctx, "task deleted", "task_id", id.String())
	return nil
}

// CountTasks returns the number of live tasks
func (t *taskServiceImpl) CountTasks(ctx context.Context) (int, error) {
	tasks, err := t.ListTasks(ctx)
	if err != nil {
		return 0, err
	}
	return len(tasks), nil
}

// logFailure records unexpected store errors and returns err unchanged
func (t *taskServiceImpl) logFailure(ctx context.Context, operation string, err error) error {
	if errors.ShouldLogError(err) {
		t.logger.ErrorContext(ctx, "task store failure", "operation", operation, "error", err)
	} else {
		t.logger.DebugContext(ctx, "task operation aborted", "operation", operation, "error", err)
	}
	return err
}
