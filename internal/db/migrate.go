package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedule_runs (
		id                   TEXT PRIMARY KEY,
		generated_at         TEXT NOT NULL,
		rate                 REAL NOT NULL,
		placeholder_resource TEXT NOT NULL,
		item_count           INTEGER NOT NULL DEFAULT 0,
		scheduled_count      INTEGER NOT NULL DEFAULT 0,
		warning_count        INTEGER NOT NULL DEFAULT 0,
		created_at           TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS scheduled_items (
		id         TEXT PRIMARY KEY,
		run_id     TEXT NOT NULL REFERENCES schedule_runs(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL,
		scope_id   TEXT NOT NULL,
		phase_id   TEXT NOT NULL,
		request_id TEXT NOT NULL,
		resource   TEXT NOT NULL,
		placement  INTEGER NOT NULL,
		quantity   REAL NOT NULL,
		start_date TEXT,
		end_date   TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scheduled_items_run ON scheduled_items(run_id)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_runs_generated ON schedule_runs(generated_at)`,
}

// Migrate runs all schema migrations. Every statement is idempotent, so
// the full set re-runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
