package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date layout used for due dates on the wire and in storage.
const DateLayout = "2006-01-02"

// Task represents a task in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Priority    Priority
	DueDate     time.Time
	Status      Status
}

// TaskInput holds the caller-supplied, mutable fields of a task.
// It is used for both creation and full replacement on update.
type TaskInput struct {
	Name        string
	Description *string
	Priority    Priority
	DueDate     time.Time
	Status      Status
}

// NewTask builds a Task with the given ID from a normalized copy of the input.
func NewTask(id uuid.UUID, in TaskInput) Task {
	n := in.Normalize()
	return Task{
		ID:          id,
		Name:        n.Name,
		Description: n.Description,
		Priority:    n.Priority,
		DueDate:     n.DueDate,
		Status:      n.Status,
	}
}

// Normalize returns a copy of the input with surrounding whitespace trimmed from the
// name and description and the due date truncated to a UTC calendar date.
// An absent description stays absent.
func (in TaskInput) Normalize() TaskInput {
	out := in
	out.Name = strings.TrimSpace(in.Name)
	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		out.Description = &d
	}
	out.DueDate = DateOf(in.DueDate)
	return out
}

// Apply replaces every mutable field of the task with the normalized input.
// The identifier is preserved.
func (t Task) Apply(in TaskInput) Task {
	return NewTask(t.ID, in)
}

// Clone returns a deep copy of the task so the caller cannot reach stored state
// through the description pointer.
func (t Task) Clone() Task {
	c := t
	if t.Description != nil {
		d := *t.Description
		c.Description = &d
	}
	return c
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}

// DateOf truncates t to midnight UTC of its calendar date.
// The zero time stays zero.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a due date given either as YYYY-MM-DD or as an RFC 3339 timestamp.
// The result is truncated to a calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// FormatDate renders a due date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
