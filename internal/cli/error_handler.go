package cli

import (
	stderrors "errors"
	"fmt"

	"task-manager/internal/config"
	"task-manager/internal/errors"
	"task-manager/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for configuration, validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	var configErr *config.ConfigError
	if stderrors.As(err, &configErr) {
		return fmt.Errorf("failed to %s: invalid configuration: %s", operation, configErr.Error())
	}

	if validationErr, ok := validation.AsValidationError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage())
	}

	if errors.IsAppError(err) {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	// Fallback for unknown errors
	return fmt.Errorf("failed to %s: %w", operation, err)
}
