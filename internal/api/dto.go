package api

import (
	"strings"

	"task-manager/internal/domain"
	"task-manager/internal/validation"
)

// TaskRequest is the wire body of create and update requests.
// Fields are pointers so that an omitted field can be told apart from an empty one.
type TaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

// TaskResponse is the wire representation of a task
type TaskResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"due_date"`
	Status      string  `json:"status"`
}

// ErrorResponse carries every human-readable failure message of a request
type ErrorResponse struct {
	Errors []string `json:"errors"`
}

// ToInput parses the wire fields into a domain input.
// Omitted fields stay at their zero value and are reported later by field validation;
// values that cannot be parsed are collected into the returned ValidationError.
func (req TaskRequest) ToInput() (domain.TaskInput, *validation.ValidationError) {
	parseErrors := validation.NewValidationError()
	var in domain.TaskInput

	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Description != nil {
		description := *req.Description
		in.Description = &description
	}

	if req.Priority != nil {
		priority, err := domain.ParsePriority(*req.Priority)
		if err != nil {
			parseErrors.AddInvalidValueError("priority", *req.Priority, "must be one of "+priorityNames())
		}
		in.Priority = priority
	}

	if req.DueDate != nil && strings.TrimSpace(*req.DueDate) != "" {
		dueDate, err := domain.ParseDate(*req.DueDate)
		if err != nil {
			parseErrors.AddInvalidFormatError("due_date", *req.DueDate, "YYYY-MM-DD")
		}
		in.DueDate = dueDate
	}

	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			parseErrors.AddInvalidValueError("status", *req.Status, "must be one of "+statusNames())
		}
		in.Status = status
	}

	if parseErrors.HasErrors() {
		return in, parseErrors
	}
	return in, nil
}

// NewTaskResponse converts a domain task to its wire form
func NewTaskResponse(task domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:       task.ID.String(),
		Name:     task.Name,
		Priority: task.Priority.String(),
		DueDate:  domain.FormatDate(task.DueDate),
		Status:   task.Status.String(),
	}
	if task.Description != nil {
		description := *task.Description
		resp.Description = &description
	}
	return resp
}

// NewTaskResponses converts a slice of domain tasks, never returning nil
func NewTaskResponses(tasks []domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, NewTaskResponse(task))
	}
	return responses
}

func priorityNames() string {
	names := make([]string, 0, len(domain.Priorities))
	for _, p := range domain.Priorities {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}

func statusNames() string {
	names := make([]string, 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
