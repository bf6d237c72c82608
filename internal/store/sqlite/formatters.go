package sqlite

import (
	"time"

	"task-manager/internal/domain"
)

// FormatDateForDB formats the calendar date of t as YYYY-MM-DD for storage
func FormatDateForDB(t time.Time) string {
	return domain.DateOf(t).Format(domain.DateLayout)
}

// ParseDateFromDB parses a stored YYYY-MM-DD date as midnight UTC
func ParseDateFromDB(s string) (time.Time, error) {
	return time.Parse(domain.DateLayout, s)
}

// FormatDescriptionForDB returns the description for a nullable column, nil when absent
func FormatDescriptionForDB(description *string) interface{} {
	if description == nil {
		return nil
	}
	return *description
}
