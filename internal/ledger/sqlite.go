// Package ledger implements the service.Ledger and service.HistorySink
// contracts on SQLite.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteLedger stores income, expense, inventory, and chat history records
// in a single SQLite database.
type SQLiteLedger struct {
	db     *sql.DB
	dbPath string
}

// Open creates a new SQLite ledger at the given path and brings the schema
// up to date. Use ":memory:" for an ephemeral database in tests.
func Open(dbPath string) (*SQLiteLedger, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	l := &SQLiteLedger{db: db, dbPath: dbPath}
	if err := l.Migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return l, nil
}

// Close closes the database connection.
func (l *SQLiteLedger) Close() error {
	return l.db.Close()
}
