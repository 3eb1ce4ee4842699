// Package store exports the dataset to SQLite so it can be queried with SQL
// instead of loaded whole from JSON.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"xzqh/internal/region"
)

const schema = `
CREATE TABLE IF NOT EXISTS years (
    year INTEGER PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS regions (
    year INTEGER NOT NULL REFERENCES years(year),
    code TEXT NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (year, code)
);`

// Store wraps a SQLite database holding one dataset.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("store: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save replaces the stored dataset with d in a single transaction.
func (s *Store) Save(ctx context.Context, d region.Dataset) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM regions`); err != nil {
		return fmt.Errorf("clear regions: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM years`); err != nil {
		return fmt.Errorf("clear years: %w", err)
	}

	yearStmt, err := tx.PrepareContext(ctx, `INSERT INTO years (year) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("prepare years: %w", err)
	}
	defer yearStmt.Close()
	regionStmt, err := tx.PrepareContext(ctx, `INSERT INTO regions (year, code, name) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare regions: %w", err)
	}
	defer regionStmt.Close()

	for year, table := range d {
		if _, err = yearStmt.ExecContext(ctx, year); err != nil {
			return fmt.Errorf("insert year %d: %w", year, err)
		}
		for code, name := range table {
			if _, err = regionStmt.ExecContext(ctx, year, code, name); err != nil {
				return fmt.Errorf("insert %d/%s: %w", year, code, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Load rebuilds the dataset, including years that have no rows.
func (s *Store) Load(ctx context.Context) (region.Dataset, error) {
	d := region.Dataset{}

	years, err := s.db.QueryContext(ctx, `SELECT year FROM years`)
	if err != nil {
		return nil, fmt.Errorf("query years: %w", err)
	}
	defer years.Close()
	for years.Next() {
		var year int
		if err := years.Scan(&year); err != nil {
			return nil, fmt.Errorf("scan year: %w", err)
		}
		d[year] = make(map[string]string)
	}
	if err := years.Err(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT year, code, name FROM regions`)
	if err != nil {
		return nil, fmt.Errorf("query regions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			year       int
			code, name string
		)
		if err := rows.Scan(&year, &code, &name); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		if d[year] == nil {
			d[year] = make(map[string]string)
		}
		d[year][code] = name
	}
	return d, rows.Err()
}

// Name returns the name recorded for code in year.
func (s *Store) Name(ctx context.Context, year int, code string) (string, bool, error) {
	var name string
	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM regions WHERE year = ? AND code = ?`, year, code).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query name: %w", err)
	}
	return name, true, nil
}
