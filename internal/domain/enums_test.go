package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input       string
		expected    Priority
		expectError bool
	}{
		{"low", PriorityLow, false},
		{"Medium", PriorityMedium, false},
		{" HIGH ", PriorityHigh, false},
		{"urgent", PriorityUnspecified, true},
		{"", PriorityUnspecified, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParsePriority(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input       string
		expected    Status
		expectError bool
	}{
		{"pending", StatusPending, false},
		{"in_progress", StatusInProgress, false},
		{"InProgress", StatusInProgress, false},
		{"in-progress", StatusInProgress, false},
		{"DONE", StatusDone, false},
		{"cancelled", StatusUnspecified, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseStatus(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPriority_IsValid(t *testing.T) {
	for _, p := range Priorities {
		assert.True(t, p.IsValid(), p.String())
	}
	assert.False(t, PriorityUnspecified.IsValid())
	assert.False(t, Priority(42).IsValid())
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, StatusUnspecified.IsValid())
	assert.False(t, Status(-1).IsValid())
}

func TestEnums_JSON(t *testing.T) {
	type payload struct {
		Priority Priority `json:"priority"`
		Status   Status   `json:"status"`
	}

	data, err := json.Marshal(payload{Priority: PriorityHigh, Status: StatusInProgress})
	require.NoError(t, err)
	assert.JSONEq(t, `{"priority":"high","status":"in_progress"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"priority":"Low","status":"Done"}`), &decoded))
	assert.Equal(t, PriorityLow, decoded.Priority)
	assert.Equal(t, StatusDone, decoded.Status)

	assert.Error(t, json.Unmarshal([]byte(`{"priority":"nope"}`), &decoded))

	_, err = json.Marshal(payload{})
	assert.Error(t, err)
}
