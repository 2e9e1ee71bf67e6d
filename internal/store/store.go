// Package store handles SQLite persistence of the history record.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kmori/sightswipe/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// historyKey is the fixed, versioned slot name for the history document.
// A format change gets a new key; old data is orphaned, not migrated.
const historyKey = "history_v5"

// Store wraps SQLite access to the key-value slot table.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS slots (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// LoadHistory reads the history slot. An absent key, unreadable row, or
// malformed value degrades to the empty record and is never an error.
func (s *Store) LoadHistory(ctx context.Context) model.HistoryRecord {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM slots WHERE key = ?`, historyKey).Scan(&raw)
	if err != nil {
		return model.EmptyHistory()
	}
	return decodeHistory(raw)
}

// SaveHistory serializes and writes the whole record. Last writer wins.
func (s *Store) SaveHistory(ctx context.Context, record model.HistoryRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO slots (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		historyKey, string(raw))
	if err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// ResetHistory writes and returns the empty record.
func (s *Store) ResetHistory(ctx context.Context) (model.HistoryRecord, error) {
	empty := model.EmptyHistory()
	if err := s.SaveHistory(ctx, empty); err != nil {
		return model.HistoryRecord{}, err
	}
	return empty, nil
}
