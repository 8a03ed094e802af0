package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrNotInitialized is wrapped by query errors when the schema has not been
// created yet (fresh database file, no `hwcheck check` run).
var ErrNotInitialized = errors.New("index database not initialized — run 'hwcheck check' or 'hwcheck reindex'")

// Store provides SQLite operations for the check-history index.
//
// The JSON log file is canonical; this database only mirrors it so that
// 'hwcheck stats' can run aggregate queries without re-parsing the whole
// log. It can be rebuilt from the log at any time.
type Store struct {
	db *sql.DB
}

// New creates a new Store with the specified database path.
// Use ":memory:" for in-memory databases (useful for testing).
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only allows one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateSchema creates all tables and indexes.
func (s *Store) CreateSchema() error {
	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// wrapQueryErr maps "no such table" failures onto ErrNotInitialized so
// callers can suggest running a check instead of surfacing raw SQL errors.
func wrapQueryErr(what string, err error) error {
	if strings.Contains(err.Error(), "no such table") {
		return fmt.Errorf("failed to %s: %w", what, ErrNotInitialized)
	}
	return fmt.Errorf("failed to %s: %w", what, err)
}
