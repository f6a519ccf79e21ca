package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store owns the database connection and hands out repositories.
type Store struct {
	db  *sql.DB
	seq *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, seq: seq}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ItemRepo returns an ItemRepo backed by this store.
func (s *Store) ItemRepo() ItemRepo {
	return &itemRepo{db: s.db, seq: s.seq}
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id           TEXT PRIMARY KEY,
		seq          INTEGER NOT NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL,
		skill        TEXT NOT NULL,
		module       TEXT NOT NULL,
		item_type    TEXT NOT NULL,
		storage_code TEXT NOT NULL,
		category     TEXT NOT NULL,
		confidence   TEXT NOT NULL,
		reason       TEXT NOT NULL DEFAULT '',
		content      TEXT NOT NULL,
		extracted    TEXT NOT NULL,
		status       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS items_status_seq ON items (status, seq)`,
	`CREATE INDEX IF NOT EXISTS items_skill_seq ON items (skill, seq)`,
	`CREATE TABLE IF NOT EXISTS review_events (
		seq        INTEGER PRIMARY KEY,
		item_id    TEXT NOT NULL REFERENCES items (id) ON DELETE CASCADE,
		status     TEXT NOT NULL,
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS review_events_item ON review_events (item_id, seq)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. ITEMIZER_DB environment variable
// 2. $XDG_DATA_HOME/itemizer/itemizer.db
// 3. ~/.local/share/itemizer/itemizer.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ITEMIZER_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "itemizer", "itemizer.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
