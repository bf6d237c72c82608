package sqlite

import (
	"database/sql"
	"fmt"

	"task-manager/internal/domain"

	"github.com/google/uuid"
)

// TaskRow mirrors a row of the tasks table
type TaskRow struct {
	ID          string
	Name        string
	Description sql.NullString
	Priority    int
	DueDate     string
	Status      int
}

// NewTaskRow converts a domain task into its stored form
func NewTaskRow(task domain.Task) TaskRow {
	row := TaskRow{
		ID:       task.ID.String(),
		Name:     task.Name,
		Priority: int(task.Priority),
		DueDate:  FormatDateForDB(task.DueDate),
		Status:   int(task.Status),
	}
	if task.Description != nil {
		row.Description = sql.NullString{String: *task.Description, Valid: true}
	}
	return row
}

// ToDomain converts the stored row back into a domain task
func (r *TaskRow) ToDomain() (domain.Task, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("invalid task id %q: %w", r.ID, err)
	}

	dueDate, err := ParseDateFromDB(r.DueDate)
	if err != nil {
		return domain.Task{}, fmt.Errorf("invalid due date %q for task %s: %w", r.DueDate, r.ID, err)
	}

	priority := domain.Priority(r.Priority)
	if !priority.IsValid() {
		return domain.Task{}, fmt.Errorf("invalid priority %d for task %s", r.Priority, r.ID)
	}

	status := domain.Status(r.Status)
	if !status.IsValid() {
		return domain.Task{}, fmt.Errorf("invalid status %d for task %s", r.Status, r.ID)
	}

	task := domain.Task{
		ID:       id,
		Name:     r.Name,
		Priority: priority,
		DueDate:  dueDate,
		Status:   status,
	}
	if r.Description.Valid {
		description := r.Description.String
		task.Description = &description
	}
	return task, nil
}
