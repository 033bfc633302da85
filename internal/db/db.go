// Package db persists processed pupillometry sessions to SQLite.
//
// Each pipeline run becomes one row in the sessions table plus one row per
// retained sample. The schema is managed by embedded golang-migrate
// migrations, applied on open.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection holding processed sessions.
type DB struct {
	*sql.DB
}

// OpenDB opens the database without touching the schema. Use NewDB unless
// migrations are being driven explicitly.
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &DB{conn}, nil
}

// NewDB opens the database at path and applies any pending migrations.
func NewDB(path string) (*DB, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}
