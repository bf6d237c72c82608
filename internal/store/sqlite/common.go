package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"

	"task-manager/internal/errors"
)

// HandleDatabaseError converts database errors to structured app errors.
// Failures caused by the caller's context are reported as cancellations.
func HandleDatabaseError(operation string, err error) error {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewCanceledError(operation, err)
	}
	return errors.NewDatabaseError(operation, err)
}

// RowsAffected reports whether a statement changed at least one row
func RowsAffected(result sql.Result) (bool, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return false, HandleDatabaseError("get rows affected", err)
	}
	return rows > 0, nil
}

// ExecuteWithRowsAffected executes a statement and reports whether any row was changed
func ExecuteWithRowsAffected(ctx context.Context, db *sql.DB, operation string, query string, args ...interface{}) (bool, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, HandleDatabaseError(operation, err)
	}

	return RowsAffected(result)
}

// QuerySingle executes a query that returns at most one row and scans it.
// A missing row is reported as false with a nil error.
func QuerySingle[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Scanner) (*T, error), entityType string, args ...interface{}) (*T, bool, error) {
	row := db.QueryRowContext(ctx, query, args...)
	result, err := scanFunc(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, HandleDatabaseError("scan "+entityType, err)
	}
	return result, true, nil
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Rows) ([]*T, error), entityType string, args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleDatabaseError("query "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleDatabaseError("scan "+entityType, err)
	}

	return results, nil
}
