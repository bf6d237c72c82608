package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"task-manager/internal/config"
	"task-manager/internal/domain"
)

// Default limits used when no configuration is supplied.
const (
	DefaultNameMaxLength        = 100
	DefaultDescriptionMaxLength = 500
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// CharacterCount returns the number of characters (runes) in s.
// Surrounding whitespace counts: limits apply to the value as received, before trimming.
func (v *Validator) CharacterCount(s string) int {
	return utf8.RuneCountInString(s)
}

// IsWithinMaxLength checks that the string has at most max characters
func (v *Validator) IsWithinMaxLength(s string, max int) bool {
	return v.CharacterCount(s) <= max
}

// IsValidNameLength checks if a task name length is within configured limits
func (v *Validator) IsValidNameLength(name string) bool {
	return v.IsWithinMaxLength(name, v.NameMaxLength())
}

// IsValidDescriptionLength checks if a description length is within configured limits
func (v *Validator) IsValidDescriptionLength(description string) bool {
	return v.IsWithinMaxLength(description, v.DescriptionMaxLength())
}

// IsNotBeforeDate reports whether the calendar date of t is on or after the calendar date of ref.
// Time of day is ignored on both sides.
func (v *Validator) IsNotBeforeDate(t, ref time.Time) bool {
	return !domain.DateOf(t).Before(domain.DateOf(ref))
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// NameMaxLength returns configured maximum task name length or default
func (v *Validator) NameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.NameMaxLength
	}
	return DefaultNameMaxLength
}

// DescriptionMaxLength returns configured maximum description length or default
func (v *Validator) DescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return DefaultDescriptionMaxLength
}
