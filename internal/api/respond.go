package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"task-manager/internal/errors"
	"task-manager/internal/validation"

	"github.com/go-chi/chi/v5/middleware"
)

// StatusClientClosedRequest is returned when the caller's context is canceled before the store is reached.
const StatusClientClosedRequest = 499

// Fixed wire messages.
const (
	msgEmptyBody        = "request body must not be empty"
	msgBodyTooLarge     = "request body too large"
	msgRequestCanceled  = "request canceled"
	msgInternalError    = "internal server error"
	msgRouteNotFound    = "resource not found"
	msgMethodNotAllowed = "method not allowed"
)

// writeJSON writes v as a JSON document with the given status
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeErrors writes an ErrorResponse with the given status
func writeErrors(w http.ResponseWriter, logger *slog.Logger, status int, messages ...string) {
	writeJSON(w, logger, status, ErrorResponse{Errors: messages})
}

// respondWithError maps an error from the service layer to an HTTP response
func respondWithError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if validationErr, ok := validation.AsValidationError(err); ok {
		writeErrors(w, logger, http.StatusBadRequest, validationErr.Messages()...)
		return
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.NewInternalError("unexpected error", err)
	}

	switch appErr.Type {
	case errors.ErrorTypeValidation:
		writeErrors(w, logger, http.StatusBadRequest, appErr.Message)
	case errors.ErrorTypeInvalidInput:
		field, _ := appErr.GetContext("field")
		logger.DebugContext(r.Context(), "rejected request body",
			"reason", appErr.Message,
			"field", field,
			"request_id", middleware.GetReqID(r.Context()),
		)
		writeErrors(w, logger, invalidInputStatus(appErr), appErr.Message)
	case errors.ErrorTypeNotFound:
		writeErrors(w, logger, http.StatusNotFound, notFoundMessage(appErr))
	case errors.ErrorTypeCanceled:
		writeErrors(w, logger, StatusClientClosedRequest, msgRequestCanceled)
	default:
		logger.ErrorContext(r.Context(), "request failed",
			"error", err,
			"code", errors.GetErrorCode(err),
			"request_id", middleware.GetReqID(r.Context()),
		)
		writeErrors(w, logger, http.StatusInternalServerError, msgInternalError)
	}
}

// invalidInputStatus answers 413 for bodies cut off by the size limit and 400 otherwise
func invalidInputStatus(err error) int {
	var maxBytesErr *http.MaxBytesError
	if stderrors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// notFoundMessage names the missing resource, e.g. "task not found"
func notFoundMessage(appErr *errors.AppError) string {
	if resource, ok := appErr.GetContext("resource"); ok {
		return fmt.Sprintf("%v not found", resource)
	}
	return msgRouteNotFound
}

// invalidBody reports a request body that could not be decoded
func invalidBody(cause error, message string) *errors.AppError {
	return errors.WrapError(cause, errors.ErrorTypeInvalidInput, message)
}

// decodeTaskRequest reads a single JSON object from the request body.
// Empty and null bodies, unknown fields, trailing data and oversized bodies are rejected
// with an invalid_input error.
func decodeTaskRequest(w http.ResponseWriter, r *http.Request, maxBytes int64) (*TaskRequest, error) {
	if r.Body == nil {
		return nil, invalidBody(nil, msgEmptyBody)
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req *TaskRequest
	if err := dec.Decode(&req); err != nil {
		return nil, decodeError(err)
	}
	if req == nil {
		return nil, invalidBody(nil, msgEmptyBody)
	}
	if err := dec.Decode(&struct{}{}); !stderrors.Is(err, io.EOF) {
		return nil, invalidBody(err, "request body must contain a single JSON object")
	}
	return req, nil
}

func decodeError(err error) *errors.AppError {
	var (
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
		maxBytesErr *http.MaxBytesError
	)

	switch {
	case stderrors.Is(err, io.EOF):
		return invalidBody(err, msgEmptyBody)
	case stderrors.As(err, &maxBytesErr):
		return invalidBody(err, msgBodyTooLarge)
	case stderrors.As(err, &syntaxErr):
		return invalidBody(err, fmt.Sprintf("request body contains malformed JSON at offset %d", syntaxErr.Offset))
	case stderrors.Is(err, io.ErrUnexpectedEOF):
		return invalidBody(err, "request body contains malformed JSON")
	case stderrors.As(err, &typeErr):
		if typeErr.Field != "" {
			return invalidBody(err, fmt.Sprintf("%s has invalid type, expected a string", typeErr.Field)).
				WithContext("field", typeErr.Field)
		}
		return invalidBody(err, "request body must be a JSON object")
	default:
		if field, ok := unknownField(err); ok {
			return invalidBody(err, fmt.Sprintf("request body contains unknown field %s", field)).
				WithContext("field", strings.Trim(field, `"`))
		}
		return invalidBody(err, "request body is invalid")
	}
}

// unknownField extracts the field name from encoding/json's DisallowUnknownFields error
func unknownField(err error) (string, bool) {
	return strings.CutPrefix(err.Error(), "json: unknown field ")
}
