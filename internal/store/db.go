// store/db.go - SQLite-backed Store
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Compile-time check that DB implements Store
var _ Store = (*DB)(nil)

type DB struct {
	*sql.DB
}

// New creates/opens the database and runs migrations
func New(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create dir: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{sqlDB}
	if err := db.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS content (
		section TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS submissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		submitted_at DATETIME NOT NULL
	);
	`
	_, err := db.Exec(schema)
	return err
}

// Generic scanner interface
type scanner interface {
	Scan(rows *sql.Rows) error
}

// Generic scanAll helper - DRY for scanning rows into slices
func scanAll[T any](rows *sql.Rows, newFn func() *T, scannerFn func(*T) scanner) ([]T, error) {
	var results []T
	for rows.Next() {
		item := newFn()
		if err := scannerFn(item).Scan(rows); err != nil {
			return nil, err
		}
		results = append(results, *item)
	}
	return results, rows.Err()
}
