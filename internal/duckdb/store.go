// Package duckdb caches contextualisation results in DuckDB, keyed by a
// fingerprint of the input pair.
package duckdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection for caching results.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database path, empty for in-memory stores.
func (s *Store) Path() string {
	return s.path
}

// ensureSchema creates tables if they don't exist.
// Only non-zero counts are stored; the full table is rebuilt on lookup.
func (s *Store) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_key VARCHAR PRIMARY KEY,
			sequence VARCHAR,
			created_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS run_outcomes (
			run_key VARCHAR,
			ord BIGINT,
			token VARCHAR,
			error_kind BIGINT,
			error_message VARCHAR,
			flank5 VARCHAR,
			ref VARCHAR,
			alt VARCHAR,
			flank3 VARCHAR,
			pos BIGINT,
			context VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS run_counts (
			run_key VARCHAR,
			context VARCHAR,
			n BIGINT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
