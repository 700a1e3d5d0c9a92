package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// One row per calendar day; payload columns cover both the
		// checklist and the consumption variant.
		`CREATE TABLE IF NOT EXISTS day_log (
			date TEXT PRIMARY KEY,
			xp INTEGER NOT NULL DEFAULT 0,
			done TEXT,
			quantities TEXT,
			forms TEXT
		);`,
		// Permanently retired one-time tasks, independent of any day row.
		`CREATE TABLE IF NOT EXISTS missions_done (
			task TEXT PRIMARY KEY
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Additive columns for older databases (ignore if already present).
	alterStmts := []string{
		`ALTER TABLE day_log ADD COLUMN forms TEXT;`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}
