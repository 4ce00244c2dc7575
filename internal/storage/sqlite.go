package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

var _ Backend = (*SqliteBackend)(nil)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS document_store (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SqliteBackend keeps documents in a single embedded database file.
type SqliteBackend struct {
	db *sql.DB
}

func NewSqliteBackend(ctx context.Context, path string) (*SqliteBackend, error) {
	if path == "" {
		return nil, errors.New("sqlite path empty")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// single writer, avoids SQLITE_BUSY between pooled conns
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create document_store table: %w", err)
	}

	return &SqliteBackend{
		db: db,
	}, nil
}

func (b *SqliteBackend) Read(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := b.db.QueryRowContext(ctx, `SELECT value FROM document_store WHERE key = ?;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return []byte(value), nil
}

func (b *SqliteBackend) Write(ctx context.Context, key string, value []byte) error {
	_, err := b.db.ExecContext(
		ctx,
		`INSERT INTO document_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (b *SqliteBackend) Close() error {
	return b.db.Close()
}
