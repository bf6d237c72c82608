package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"task-manager/internal/errors"
	"task-manager/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTaskRequest_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
		field    string
	}{
		{name: "empty", body: "", expected: msgEmptyBody},
		{name: "null", body: "null", expected: msgEmptyBody},
		{name: "unknown field", body: `{"owner":"me"}`, expected: `request body contains unknown field "owner"`, field: "owner"},
		{name: "wrong type", body: `{"status":2}`, expected: "status has invalid type, expected a string", field: "status"},
		{name: "array", body: `[]`, expected: "request body must be a JSON object"},
		{name: "two objects", body: `{} {}`, expected: "request body must contain a single JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, TasksPath, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			got, err := decodeTaskRequest(rec, req, DefaultMaxBodyBytes)
			require.Error(t, err)
			assert.Nil(t, got)

			appErr, ok := errors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, errors.ErrorTypeInvalidInput, appErr.Type)
			assert.Equal(t, tt.expected, appErr.Message)

			field, ok := appErr.GetContext("field")
			if tt.field == "" {
				assert.False(t, ok)
			} else {
				assert.Equal(t, tt.field, field)
			}
		})
	}
}

func TestDecodeTaskRequest_TooLarge(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, TasksPath, strings.NewReader(`{"name":"`+strings.Repeat("x", 100)+`"}`))
	rec := httptest.NewRecorder()

	_, err := decodeTaskRequest(rec, req, 16)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	assert.Equal(t, http.StatusRequestEntityTooLarge, invalidInputStatus(err))
}

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{"not found names the resource", errors.NewNotFoundError("task", "abc"), http.StatusNotFound, "task not found"},
		{"invalid input", invalidBody(nil, msgEmptyBody), http.StatusBadRequest, msgEmptyBody},
		{"canceled", errors.NewCanceledError("list tasks", nil), StatusClientClosedRequest, msgRequestCanceled},
		{"database", errors.NewDatabaseError("list tasks", nil), http.StatusInternalServerError, msgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, TasksPath, nil)

			respondWithError(rec, req, logging.Discard(), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, []string{tt.expected}, decodeErrors(t, rec))
		})
	}
}

func TestRespondWithError_LogsRejectedField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ts := newTestServer(t, WithLogger(logger))

	rec := ts.do(t, http.MethodPost, TasksPath, `{"owner":"me"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, buf.String(), "rejected request body")
	assert.Contains(t, buf.String(), "field=owner")
	assert.NotContains(t, buf.String(), "request failed")
}
