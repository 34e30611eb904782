package repository

import (
	"context"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/db"
)

// SQLiteUIStateStore persists session-scoped UI state (expansion sets and
// similar) as one row per key. It satisfies the timeline.KVStore port.
// Reads and writes are synchronous by design: the expansion store hydrates
// at construction and re-serializes on every mutation.
type SQLiteUIStateStore struct {
	db db.DBTX
}

// NewSQLiteUIStateStore creates a new SQLiteUIStateStore.
func NewSQLiteUIStateStore(dbtx db.DBTX) *SQLiteUIStateStore {
	return &SQLiteUIStateStore{db: dbtx}
}

// Get returns the stored value for key and whether it exists. Storage errors
// read as absence: corrupt or unreachable state degrades to an empty set
// upstream instead of failing the render.
func (s *SQLiteUIStateStore) Get(key string) (string, bool) {
	var value string
	err := s.db.QueryRowContext(context.Background(),
		`SELECT value FROM ui_state WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set upserts the value for key.
func (s *SQLiteUIStateStore) Set(key, value string) error {
	_, err := s.db.ExecContext(context.Background(),
		`INSERT INTO ui_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}
