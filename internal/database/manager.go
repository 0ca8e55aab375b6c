// Package database opens the SQLite database czjira keeps its answer history in.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// connectionPragmas run once after the database is opened.
var connectionPragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA foreign_keys = ON",
}

// Manager owns the database handle and its schema.
type Manager struct {
	db *sql.DB
}

// NewManager opens dsn (a file path or ":memory:") and migrates it to the latest schema.
func NewManager(ctx context.Context, dsn string) (*Manager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dsn, err)
	}

	// ":memory:" databases exist per connection
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(time.Minute)

	manager := &Manager{db: db}
	if err := manager.prepare(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return manager, nil
}

func (m *Manager) prepare(ctx context.Context) error {
	for _, pragma := range connectionPragmas {
		if _, err := m.db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return m.runMigrations(ctx)
}

// DB returns the underlying handle.
func (m *Manager) DB() *sql.DB {
	return m.db
}

// Close closes the database. It is safe on a zero Manager.
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	if err := m.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
