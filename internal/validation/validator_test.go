package validation

import (
	"strings"
	"testing"
	"time"

	"task-manager/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with spaces", "hello world", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_CharacterCount(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"Empty", "", 0},
		{"ASCII", "abc", 3},
		{"Surrounding whitespace counted", "  abc  ", 7},
		{"Multibyte runes", "héllo", 5},
		{"CJK", "買い物", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.CharacterCount(tt.input); got != tt.expected {
				t.Errorf("CharacterCount(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidNameLength(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Short name", "Buy milk", true},
		{"Exactly at limit", strings.Repeat("a", 100), true},
		{"Over limit", strings.Repeat("a", 101), false},
		{"Padded past limit", "  " + strings.Repeat("a", 98) + "  ", false},
		{"Padded to limit", " " + strings.Repeat("a", 98) + " ", true},
		{"Multibyte at limit", strings.Repeat("é", 100), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.IsValidNameLength(tt.input); got != tt.expected {
				t.Errorf("IsValidNameLength(len=%d) = %v, expected %v", len(tt.input), got, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidDescriptionLength(t *testing.T) {
	validator := NewValidator()

	if !validator.IsValidDescriptionLength(strings.Repeat("d", 500)) {
		t.Errorf("expected 500 characters to be accepted")
	}
	if validator.IsValidDescriptionLength(strings.Repeat("d", 501)) {
		t.Errorf("expected 501 characters to be rejected")
	}
	if !validator.IsValidDescriptionLength("") {
		t.Errorf("expected empty description to be accepted")
	}
}

func TestValidator_ConfiguredLimits(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.NameMaxLength = 5
	cfg.Validation.DescriptionMaxLength = 10

	validator := NewValidatorWithConfig(cfg)

	if validator.NameMaxLength() != 5 {
		t.Errorf("NameMaxLength() = %d, expected 5", validator.NameMaxLength())
	}
	if validator.DescriptionMaxLength() != 10 {
		t.Errorf("DescriptionMaxLength() = %d, expected 10", validator.DescriptionMaxLength())
	}
	if validator.IsValidNameLength("abcdef") {
		t.Errorf("expected name over configured limit to be rejected")
	}
	if !validator.IsValidDescriptionLength("0123456789") {
		t.Errorf("expected description at configured limit to be accepted")
	}
}

func TestValidator_DefaultLimits(t *testing.T) {
	validator := NewValidator()

	if validator.NameMaxLength() != DefaultNameMaxLength {
		t.Errorf("NameMaxLength() = %d, expected %d", validator.NameMaxLength(), DefaultNameMaxLength)
	}
	if validator.DescriptionMaxLength() != DefaultDescriptionMaxLength {
		t.Errorf("DescriptionMaxLength() = %d, expected %d", validator.DescriptionMaxLength(), DefaultDescriptionMaxLength)
	}
}

func TestValidator_IsNotBeforeDate(t *testing.T) {
	validator := NewValidator()
	ref := time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    time.Time
		expected bool
	}{
		{"Same day earlier time", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"Same day later time", time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC), true},
		{"Next day", time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), true},
		{"Previous day", time.Date(2024, 6, 14, 23, 59, 0, 0, time.UTC), false},
		{"Previous year", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.IsNotBeforeDate(tt.input, ref); got != tt.expected {
				t.Errorf("IsNotBeforeDate(%v, %v) = %v, expected %v", tt.input, ref, got, tt.expected)
			}
		})
	}
}

func TestValidator_TrimAndValidateString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"No trimming needed", "hello", "hello"},
		{"Leading spaces", "  hello", "hello"},
		{"Trailing spaces", "hello  ", "hello"},
		{"Both sides", "  hello world  ", "hello world"},
		{"Tabs and newlines", "\t\nhello\t\n", "hello"},
		{"Only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.TrimAndValidateString(tt.input)
			if result != tt.expected {
				t.Errorf("TrimAndValidateString(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
