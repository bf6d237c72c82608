package validation

import (
	"time"

	"task-manager/internal/config"
	"task-manager/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using the configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateForCreation validates a task input for creation.
// On top of the field rules, the due date must not be before today's calendar date.
func (tv *TaskValidator) ValidateForCreation(in domain.TaskInput, today time.Time) error {
	validationError := tv.fieldErrors(in)
	validationError.Merge(tv.dueDateErrors(in.DueDate, today))
	return validationError.ErrOrNil()
}

// ValidateForUpdate validates a task input for a full replacement.
// The due date is not checked against today so an overdue task can still be edited.
func (tv *TaskValidator) ValidateForUpdate(in domain.TaskInput) error {
	return tv.fieldErrors(in).ErrOrNil()
}

// dueDateErrors reports a due date that lies before today. A missing date is left to fieldErrors.
func (tv *TaskValidator) dueDateErrors(dueDate, today time.Time) *ValidationError {
	validationError := NewValidationError()
	if !dueDate.IsZero() && !tv.validator.IsNotBeforeDate(dueDate, today) {
		validationError.AddPastDateError("due_date", domain.FormatDate(dueDate))
	}
	return validationError
}

func (tv *TaskValidator) fieldErrors(in domain.TaskInput) *ValidationError {
	validationError := NewValidationError()
	tv.validateName(in.Name, validationError)

	if in.Description != nil && !tv.validator.IsValidDescriptionLength(*in.Description) {
		validationError.AddInvalidLengthError("description", *in.Description, 0, tv.validator.DescriptionMaxLength())
	}

	if !in.Priority.IsValid() {
		validationError.AddRequiredError("priority")
	}

	if in.DueDate.IsZero() {
		validationError.AddRequiredError("due_date")
	}

	if !in.Status.IsValid() {
		validationError.AddRequiredError("status")
	}

	return validationError
}

func (tv *TaskValidator) validateName(name string, validationError *ValidationError) {
	if !tv.validator.IsNonEmptyString(name) {
		validationError.AddRequiredError("name")
		return
	}

	if !tv.validator.IsValidNameLength(name) {
		validationError.AddInvalidLengthError("name", tv.validator.TrimAndValidateString(name), 0, tv.validator.NameMaxLength())
	}
}
