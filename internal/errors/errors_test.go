package errors

import (
	"context"
	"errors"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("name is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "0b0f3c1e-0000-4000-8000-000000000001")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: 0b0f3c1e-0000-4000-8000-000000000001" {
		t.Errorf("NewNotFoundError message = %v", err.Message)
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("NewNotFoundError code = %v, want %v", err.Code, "NOT_FOUND")
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "task" {
		t.Errorf("NewNotFoundError should set resource context")
	}

	identifier, ok := err.GetContext("identifier")
	if !ok || identifier != "0b0f3c1e-0000-4000-8000-000000000001" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewDatabaseError("insert task", cause)

	if err.Type != ErrorTypeDatabase {
		t.Errorf("NewDatabaseError type = %v, want %v", err.Type, ErrorTypeDatabase)
	}
	if err.Message != "database operation failed: insert task" {
		t.Errorf("NewDatabaseError message = %v, want %v", err.Message, "database operation failed: insert task")
	}
	if err.Code != "DATABASE_ERROR" {
		t.Errorf("NewDatabaseError code = %v, want %v", err.Code, "DATABASE_ERROR")
	}
	if err.Cause != cause {
		t.Errorf("NewDatabaseError cause = %v, want %v", err.Cause, cause)
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "insert task" {
		t.Errorf("NewDatabaseError should set operation context")
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("priority", "urgent", "must be one of low, medium, high")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for priority: must be one of low, medium, high" {
		t.Errorf("NewInvalidInputError message = %v", err.Message)
	}
	if err.Code != "INVALID_INPUT" {
		t.Errorf("NewInvalidInputError code = %v, want %v", err.Code, "INVALID_INPUT")
	}

	field, ok := err.GetContext("field")
	if !ok || field != "priority" {
		t.Errorf("NewInvalidInputError should set field context")
	}

	value, ok := err.GetContext("value")
	if !ok || value != "urgent" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestNewCanceledError(t *testing.T) {
	err := NewCanceledError("create task", context.Canceled)

	if err.Type != ErrorTypeCanceled {
		t.Errorf("NewCanceledError type = %v, want %v", err.Type, ErrorTypeCanceled)
	}
	if err.Message != "operation aborted: create task" {
		t.Errorf("NewCanceledError message = %v", err.Message)
	}
	if err.Code != "OPERATION_ABORTED" {
		t.Errorf("NewCanceledError code = %v, want %v", err.Code, "OPERATION_ABORTED")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("NewCanceledError should unwrap to context.Canceled")
	}
	if IsErrorType(err, ErrorTypeNotFound) {
		t.Errorf("NewCanceledError must not be reported as not found")
	}
}

func TestNewInternalError(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternalError("failed to encode response", cause)

	if err.Type != ErrorTypeInternal {
		t.Errorf("NewInternalError type = %v, want %v", err.Type, ErrorTypeInternal)
	}
	if err.Code != "INTERNAL_ERROR" {
		t.Errorf("NewInternalError code = %v, want %v", err.Code, "INTERNAL_ERROR")
	}
	if !errors.Is(err, cause) {
		t.Errorf("NewInternalError should unwrap to its cause")
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original error")
	err := WrapError(cause, ErrorTypeDatabase, "wrapped message")

	if err.Type != ErrorTypeDatabase {
		t.Errorf("WrapError type = %v, want %v", err.Type, ErrorTypeDatabase)
	}
	if err.Message != "wrapped message" {
		t.Errorf("WrapError message = %v, want %v", err.Message, "wrapped message")
	}
	if err.Code != "database" {
		t.Errorf("WrapError code = %v, want %v", err.Code, "database")
	}
	if err.Cause != cause {
		t.Errorf("WrapError cause = %v, want %v", err.Cause, cause)
	}
}

func TestIsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	if !IsAppError(appError) {
		t.Errorf("IsAppError should return true for AppError")
	}

	if IsAppError(regularError) {
		t.Errorf("IsAppError should return false for regular error")
	}

	if IsAppError(nil) {
		t.Errorf("IsAppError should return false for nil")
	}
}

func TestAsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	result, ok := AsAppError(appError)
	if !ok {
		t.Errorf("AsAppError should return true for AppError")
	}
	if result != appError {
		t.Errorf("AsAppError should return the same AppError instance")
	}

	result, ok = AsAppError(regularError)
	if ok {
		t.Errorf("AsAppError should return false for regular error")
	}
	if result != nil {
		t.Errorf("AsAppError should return nil for regular error")
	}
}

func TestIsErrorType(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	if !IsErrorType(appError, ErrorTypeValidation) {
		t.Errorf("IsErrorType should return true for matching type")
	}

	if IsErrorType(appError, ErrorTypeDatabase) {
		t.Errorf("IsErrorType should return false for different type")
	}

	if IsErrorType(regularError, ErrorTypeValidation) {
		t.Errorf("IsErrorType should return false for regular error")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("invalid input", nil),
			expected: "invalid input",
		},
		{
			name:     "Not found error",
			err:      NewNotFoundError("task", "123"),
			expected: "task not found: 123",
		},
		{
			name:     "Database error",
			err:      NewDatabaseError("query", errors.New("locked")),
			expected: "A database error occurred. Please try again.",
		},
		{
			name:     "Canceled error",
			err:      NewCanceledError("list tasks", context.Canceled),
			expected: "The request was canceled.",
		},
		{
			name:     "Internal error",
			err:      NewInternalError("encode", nil),
			expected: "An unexpected error occurred. Please try again.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	appError := &AppError{Code: "VALIDATION_FAILED"}
	regularError := errors.New("regular error")

	if GetErrorCode(appError) != "VALIDATION_FAILED" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}

	if GetErrorCode(regularError) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation error", NewValidationError("invalid input", nil), false},
		{"Not found error", NewNotFoundError("task", "123"), false},
		{"Invalid input error", NewInvalidInputError("status", "x", "unknown"), false},
		{"Canceled error", NewCanceledError("get task", context.Canceled), false},
		{"Database error", NewDatabaseError("query", errors.New("locked")), true},
		{"Internal error", NewInternalError("boom", nil), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
