package main

// Cursor position history. The last cursor position of every edited file is
// kept in a small SQLite database so reopening a file puts the cursor back.

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS positions (
	path       TEXT PRIMARY KEY,
	row        INTEGER NOT NULL,
	col        INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);`

// Position is a cursor location: row and character index.
type Position struct {
	Row int
	Col int
}

// History stores cursor positions keyed by absolute file path.
type History struct {
	db *sql.DB
}

// OpenHistory opens (and creates when needed) the database at path.
func OpenHistory(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path + "?_pragma=busy_timeout(1000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &History{db: db}, nil
}

// Lookup returns the stored position for path, if any.
func (h *History) Lookup(path string) (Position, bool, error) {
	var pos Position
	err := h.db.QueryRow("SELECT row, col FROM positions WHERE path = ?", path).Scan(&pos.Row, &pos.Col)
	if errors.Is(err, sql.ErrNoRows) {
		return Position{}, false, nil
	}
	if err != nil {
		return Position{}, false, fmt.Errorf("lookup %s: %w", path, err)
	}
	return pos, true, nil
}

// Remember stores pos as the position for path.
func (h *History) Remember(path string, pos Position) error {
	_, err := h.db.Exec(`
		INSERT INTO positions (path, row, col, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET row = excluded.row, col = excluded.col, updated_at = excluded.updated_at`,
		path, pos.Row, pos.Col, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("remember %s: %w", path, err)
	}
	return nil
}

// Close closes the database.
func (h *History) Close() error {
	return h.db.Close()
}
