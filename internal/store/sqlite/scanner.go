package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row.
// Columns are expected in taskColumns order.
func ScanTask(scanner Scanner) (*TaskRow, error) {
	row := &TaskRow{}
	err := scanner.Scan(
		&row.ID,
		&row.Name,
		&row.Description,
		&row.Priority,
		&row.DueDate,
		&row.Status,
	)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*TaskRow, error) {
	var tasks []*TaskRow
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
