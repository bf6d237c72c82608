package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/store"
	"task-manager/internal/store/sqlite/migrations"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const taskColumns = `id, name, description, priority, due_date, status`

// Option configures a SQLiteRepository
type Option func(*SQLiteRepository)

// WithIDGenerator replaces the random UUID source
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(r *SQLiteRepository) {
		r.newID = gen
	}
}

// SQLiteRepository implements store.TaskStore on top of SQLite
type SQLiteRepository struct {
	db    *sql.DB
	newID func() uuid.UUID
}

var _ store.TaskStore = (*SQLiteRepository)(nil)

// InMemoryDSN returns a DSN for a private in-memory database that never touches disk
func InMemoryDSN() string {
	return fmt.Sprintf("file:tasks-%s?mode=memory&cache=shared", uuid.NewString())
}

// NewInMemory creates a repository backed by a fresh in-memory database
func NewInMemory(opts ...Option) (*SQLiteRepository, error) {
	return New(InMemoryDSN(), opts...)
}

// New opens the database, runs migrations and returns a repository.
// A single connection is kept open so an in-memory database lives as long as the repository.
func New(dsn string, opts ...Option) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	r := &SQLiteRepository{db: db, newID: uuid.New}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Create inserts a new task under a freshly generated ID
func (r *SQLiteRepository) Create(ctx context.Context, in domain.TaskInput) (domain.Task, error) {
	if err := store.CheckContext(ctx, "create task"); err != nil {
		return domain.Task{}, err
	}

	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?) ON CONFLICT(id) DO NOTHING`

	for {
		id := r.newID()
		if id == uuid.Nil {
			continue
		}

		task := domain.NewTask(id, in)
		row := NewTaskRow(task)
		inserted, err := ExecuteWithRowsAffected(ctx, r.db, "create task", query,
			row.ID, row.Name, FormatDescriptionForDB(task.Description), row.Priority, row.DueDate, row.Status)
		if err != nil {
			return domain.Task{}, err
		}
		// Nothing inserted means the ID is already taken.
		if inserted {
			return task, nil
		}
	}
}

// GetAll retrieves all tasks in insertion order
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]domain.Task, error) {
	if err := store.CheckContext(ctx, "list tasks"); err != nil {
		return nil, err
	}

	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY rowid ASC`
	rows, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := row.ToDomain()
		if err != nil {
			return nil, HandleDatabaseError("decode task", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// GetByID retrieves a task by ID
func (r *SQLiteRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Task, bool, error) {
	if err := store.CheckContext(ctx, "get task"); err != nil {
		return domain.Task{}, false, err
	}

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row, found, err := QuerySingle(ctx, r.db, query, ScanTask, "task", id.String())
	if err != nil || !found {
		return domain.Task{}, false, err
	}

	task, err := row.ToDomain()
	if err != nil {
		return domain.Task{}, false, HandleDatabaseError("decode task", err)
	}
	return task, true, nil
}

// Update replaces the mutable fields of an existing task
func (r *SQLiteRepository) Update(ctx context.Context, id uuid.UUID, in domain.TaskInput) (domain.Task, bool, error) {
	if err := store.CheckContext(ctx, "update task"); err != nil {
		return domain.Task{}, false, err
	}

	task := domain.NewTask(id, in)
	row := NewTaskRow(task)

	query := `
	UPDATE tasks
	SET name = ?, description = ?, priority = ?, due_date = ?, status = ?
	WHERE id = ?`

	updated, err := ExecuteWithRowsAffected(ctx, r.db, "update task", query,
		row.Name, FormatDescriptionForDB(task.Description), row.Priority, row.DueDate, row.Status, row.ID)
	if err != nil || !updated {
		return domain.Task{}, false, err
	}
	return task, true, nil
}

// Delete deletes a task by ID
func (r *SQLiteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := store.CheckContext(ctx, "delete task"); err != nil {
		return false, err
	}

	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, "delete task", query, id.String())
}
