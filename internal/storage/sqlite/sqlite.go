// Package sqlite implements a Store over a single kv table. It exists for
// deployments that prefer one database file over a directory of JSON
// documents; it does not support Watch (the file backend is the watchable
// one).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/alumnihub/internal/storage"
	"github.com/dmitrijs2005/alumnihub/internal/storage/sqlite/migrations"
)

type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at dsn and applies the
// embedded migrations. The caller must blank-import an sqlite driver
// registered under the name "sqlite".
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// NewWithDB wraps an existing connection, applying migrations. Used by tests
// running against an in-memory database.
func NewWithDB(ctx context.Context, db *sql.DB) (*Store, error) {
	if err := runMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return &Store{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select %s: %w", key, err)
	}
	return v, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Watch is unsupported for the sqlite backend.
func (s *Store) Watch(ctx context.Context) (<-chan storage.Event, error) {
	return nil, storage.ErrWatchUnsupported
}

func (s *Store) Close() error {
	return s.db.Close()
}
