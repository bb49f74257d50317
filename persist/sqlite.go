package persist

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements Store on top of a single-table SQLite
// database, for single-process deployments that want a durable Store
// without standing up a network service.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) a SQLite database at
// path and ensures its blob table exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("persist: open sqlite %s: %w", path, err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS blobs (
		name TEXT PRIMARY KEY,
		content BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("persist: create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Load(ctx context.Context, name string) ([]byte, error) {
	var content []byte
	row := s.db.QueryRowContext(ctx, `SELECT content FROM blobs WHERE name = ?`, name)
	if err := row.Scan(&content); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("persist: no entry for %s", name)
		}
		return nil, err
	}
	return content, nil
}

func (s *SQLiteStore) Store(ctx context.Context, name string, b []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO blobs (name, content) VALUES (?, ?)`, name, b)
	return err
}
