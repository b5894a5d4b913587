// Package store persists the launcher's usage history and overlay sets in
// SQLite.
//
// Usage history is one append-only log of "item launched" events. The
// long-term and short-term windows the ranking is computed from are views
// over the most recent rows of that log (600 and 20 respectively); inserts
// prune rows that fell out of the long window in the same transaction, so the
// log stays bounded and a reader never observes a half-updated window.
//
// Overlays (deprioritized, deleted, ignored-notifications, renamed) are
// plain per-id tables mutated by explicit user actions. They persist until
// explicitly reversed. Deprioritizing or deleting an item also purges its
// history: un-deprioritizing starts the item at zero, not at a stale count.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/BoD/a/internal/live"
)

// Window capacities of the usage-counter model. Recency is count-based, not
// time-based: a launch leaves the short window after 20 further launches and
// the long window after 600, regardless of wall time.
const (
	LongTermWindowSize  = 600
	ShortTermWindowSize = 20
)

// ErrNotInitialized is returned when the database schema has not been
// created yet.
var ErrNotInitialized = errors.New("database not initialized: schema missing")

// Store provides SQLite persistence for launch history and overlays.
type Store struct {
	db      *sql.DB
	changed *live.Signal
}

// New creates a Store backed by the database at dbPath.
// Use ":memory:" for in-memory databases (useful for testing).
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// All mutations go through a single writer; reads see the latest
	// committed snapshot.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &Store{db: db, changed: live.NewSignal()}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DB returns the underlying database connection for advanced queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// CreateSchema creates all tables and indexes.
func (s *Store) CreateSchema() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Changed returns the signal raised after every successful mutation.
// The counter aggregator and the engine subscribe to it.
func (s *Store) Changed() *live.Signal {
	return s.changed
}

// wrapErr attaches op context and maps missing-table failures to
// ErrNotInitialized so callers can tell "run setup first" from corruption.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "no such table") {
		return fmt.Errorf("%s: %w", op, ErrNotInitialized)
	}
	return fmt.Errorf("%s: %w", op, err)
}
