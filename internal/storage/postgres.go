package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/physioroutines/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var _ Backend = (*PostgresBackend)(nil)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS document_store
(
    key        VARCHAR PRIMARY KEY,
    value      JSONB       NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

type PostgresBackend struct {
	db *pgxpool.Pool
}

func NewPostgresBackend(db *pgxpool.Pool) *PostgresBackend {
	return &PostgresBackend{
		db: db,
	}
}

// EnsureSchema creates the document table if it's not there yet.
func (b *PostgresBackend) EnsureSchema(ctx context.Context) error {
	if _, err := b.db.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("create document_store table: %w", err)
	}
	return nil
}

func (b *PostgresBackend) Read(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.postgres.read")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	var value string
	err = b.db.QueryRow(
		ctx,
		`SELECT value FROM document_store WHERE key = $1;`,
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select %s: %w", key, err)
	}

	return []byte(value), nil
}

func (b *PostgresBackend) Write(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.postgres.write")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))
	span.SetAttributes(attribute.Int("size", len(value)))

	_, err = b.db.Exec(
		ctx,
		`INSERT INTO document_store (key, value, updated_at)
				VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at;`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (b *PostgresBackend) Close() error {
	if b.db != nil {
		b.db.Close()
	}
	return nil
}
