package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS locations (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL,
		area       REAL,
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS fields (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		location_id INTEGER NOT NULL REFERENCES locations(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		area        REAL,
		notes       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_fields_location ON fields(location_id)`,

	`CREATE TABLE IF NOT EXISTS beds (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		field_id   INTEGER NOT NULL REFERENCES fields(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		area       REAL,
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_beds_field ON beds(field_id)`,

	`CREATE TABLE IF NOT EXISTS plantings (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		bed_id     INTEGER NOT NULL REFERENCES beds(id) ON DELETE CASCADE,
		crop       TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL,
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plantings_bed ON plantings(bed_id)`,
	`CREATE INDEX IF NOT EXISTS idx_plantings_start ON plantings(start_date)`,

	// Session-scoped UI state (expansion sets and similar), one row per scope.
	`CREATE TABLE IF NOT EXISTS ui_state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,

	// Add quantity annotation to plantings
	`ALTER TABLE plantings ADD COLUMN quantity REAL`,

	// Draft plantings carry a client reference until they are saved
	`ALTER TABLE plantings ADD COLUMN client_ref TEXT NOT NULL DEFAULT ''`,
}
