package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is re-run on each
// open, so statements must be idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS review_decisions (
		id           TEXT PRIMARY KEY,
		scope        TEXT NOT NULL CHECK(scope IN ('row','sheet')),
		user_id      TEXT NOT NULL DEFAULT '',
		timesheet_id TEXT NOT NULL,
		action       TEXT NOT NULL,
		note         TEXT NOT NULL DEFAULT '',
		reviewer     TEXT NOT NULL DEFAULT '',
		success      INTEGER NOT NULL,
		message      TEXT NOT NULL DEFAULT '',
		decided_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_decisions_decided ON review_decisions(decided_at)`,
	`CREATE INDEX IF NOT EXISTS idx_decisions_user ON review_decisions(user_id)`,
}
