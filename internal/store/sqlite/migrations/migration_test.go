package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&count)
	require.NoError(t, err)
	return count > 0
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "create_tasks", migrations[0].Name)
	assert.Contains(t, migrations[0].Up, "CREATE TABLE IF NOT EXISTS tasks")

	assert.Equal(t, 2, migrations[1].Version)
	assert.Equal(t, "index_tasks_due_date", migrations[1].Name)
}

func TestRunMigrations(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, RunMigrations(ctx, db))
	assert.True(t, tableExists(t, db, "tasks"))

	applied, err := AppliedVersions(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: true}, applied)

	// Running again is a no-op.
	require.NoError(t, RunMigrations(ctx, db))
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestTasksTableConstraints(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, RunMigrations(ctx, db))

	_, err := db.Exec(`INSERT INTO tasks (id, name, description, priority, due_date, status) VALUES ('a', 'ok', NULL, 1, '2024-01-01', 1)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO tasks (id, name, description, priority, due_date, status) VALUES ('b', 'bad', NULL, 0, '2024-01-01', 1)`)
	assert.Error(t, err, "priority outside the enum must be rejected")

	_, err = db.Exec(`INSERT INTO tasks (id, name, description, priority, due_date, status) VALUES ('a', 'dup', NULL, 1, '2024-01-01', 1)`)
	assert.Error(t, err, "duplicate id must be rejected")
}

func TestExtractVersionAndName(t *testing.T) {
	tests := []struct {
		filename string
		version  int
		name     string
	}{
		{"000001_create_tasks.up.sql", 1, "create_tasks"},
		{"000012_add_index.up.sql", 12, "add_index"},
		{"readme.up.sql", 0, "readme"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.version, extractVersion(tt.filename))
			assert.Equal(t, tt.name, extractName(tt.filename))
		})
	}
}
