// Package sqlite persists cache entries in an embedded SQLite database so
// extraction results survive client restarts.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS cache_entries (
	key     TEXT PRIMARY KEY,
	payload BLOB NOT NULL,
	expiry  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cache_expiry ON cache_entries(expiry);
`

// Store is a SQLite-backed cache store.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the cache database under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tubelens")
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "cache.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply cache schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the payload and expiry for key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, time.Time, bool, error) {
	var payload []byte
	var expiryUnix int64
	row := s.db.QueryRowContext(ctx,
		`SELECT payload, expiry FROM cache_entries WHERE key = ?`, key)
	if err := row.Scan(&payload, &expiryUnix); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, time.Time{}, false, nil
		}
		return nil, time.Time{}, false, fmt.Errorf("read cache row: %w", err)
	}
	return payload, time.Unix(0, expiryUnix), true, nil
}

// Set replaces any prior entry for key.
func (s *Store) Set(ctx context.Context, key string, payload []byte, expiry time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cache_entries (key, payload, expiry) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, expiry = excluded.expiry`,
		key, payload, expiry.UnixNano())
	if err != nil {
		return fmt.Errorf("write cache row: %w", err)
	}
	return nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM cache_entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete cache row: %w", err)
	}
	return nil
}

// Reap removes every entry that expired before cutoff.
func (s *Store) Reap(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM cache_entries WHERE expiry < ?`, cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("reap cache rows: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
