package memory

import (
	"context"
	"sync"

	"task-manager/internal/domain"
	"task-manager/internal/store"

	"github.com/google/uuid"
)

// IDGenerator produces candidate task IDs.
type IDGenerator func() uuid.UUID

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithIDGenerator replaces the random UUID source.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *TaskStore) {
		s.newID = gen
	}
}

// TaskStore keeps tasks in process memory.
// Writers take the write lock, readers share the read lock.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]domain.Task
	order []uuid.UUID
	newID IDGenerator
}

var _ store.TaskStore = (*TaskStore)(nil)

// New creates an empty in-memory task store.
func New(opts ...Option) *TaskStore {
	s := &TaskStore{
		tasks: make(map[uuid.UUID]domain.Task),
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new task built from the normalized input.
func (s *TaskStore) Create(ctx context.Context, in domain.TaskInput) (domain.Task, error) {
	if err := store.CheckContext(ctx, "create task"); err != nil {
		return domain.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := domain.NewTask(s.nextID(), in)
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)

	return task.Clone(), nil
}

// GetAll returns a snapshot of every task in insertion order.
func (s *TaskStore) GetAll(ctx context.Context) ([]domain.Task, error) {
	if err := store.CheckContext(ctx, "list tasks"); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, s.tasks[id].Clone())
	}
	return tasks, nil
}

// GetByID returns the task with the given ID.
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Task, bool, error) {
	if err := store.CheckContext(ctx, "get task"); err != nil {
		return domain.Task{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return domain.Task{}, false, nil
	}
	return task.Clone(), true, nil
}

// Update replaces the mutable fields of an existing task.
func (s *TaskStore) Update(ctx context.Context, id uuid.UUID, in domain.TaskInput) (domain.Task, bool, error) {
	if err := store.CheckContext(ctx, "update task"); err != nil {
		return domain.Task{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[id]
	if !ok {
		return domain.Task{}, false, nil
	}

	updated := existing.Apply(in)
	s.tasks[id] = updated
	return updated.Clone(), true, nil
}

// Delete removes the task with the given ID.
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := store.CheckContext(ctx, "delete task"); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false, nil
	}

	delete(s.tasks, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// Close is a no-op; the tasks are released with the store.
func (s *TaskStore) Close() error {
	return nil
}

// nextID draws IDs until one is free. The caller holds the write lock.
func (s *TaskStore) nextID() uuid.UUID {
	for {
		id := s.newID()
		if id == uuid.Nil {
			continue
		}
		if _, taken := s.tasks[id]; !taken {
			return id
		}
	}
}
