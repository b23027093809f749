package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestOpenDB_CreatesSchema(t *testing.T) {
	database := openTestDB(t)

	for _, table := range []string{"schedule_runs", "scheduled_items"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s must exist", table)
		assert.Equal(t, table, name)
	}

	for _, index := range []string{"idx_scheduled_items_run", "idx_schedule_runs_generated"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'index' AND name = ?`, index,
		).Scan(&name)
		require.NoError(t, err, "index %s must exist", index)
	}
}

func TestOpenDB_ForeignKeysEnabled(t *testing.T) {
	database := openTestDB(t)

	var enabled int
	require.NoError(t, database.QueryRow(`PRAGMA foreign_keys`).Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestMigrate_Idempotent(t *testing.T) {
	database := openTestDB(t)

	// OpenDB already migrated once; a second pass must be a no-op.
	require.NoError(t, Migrate(database))
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")

	database, err := OpenDB(path)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.Ping())
}
