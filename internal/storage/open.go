package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/physioroutines/internal/db"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type OpenParams struct {
	Driver Driver

	FileRootPath string

	MemorySizeBytes int

	// RedisClient is shared with the caller and not closed by the backend.
	RedisClient *redis.Client

	Postgres db.NewDBPoolParams
	// PostgresPool is set by Open for the postgres driver, so the caller can
	// register pool metrics.
	PostgresPool *pgxpool.Pool

	SqlitePath string

	S3 S3Params
}

// Open creates the storage backend selected by params.Driver.
func Open(ctx context.Context, params *OpenParams) (Backend, error) {
	switch params.Driver {
	case DriverFile, "":
		return NewFileBackend(params.FileRootPath)
	case DriverMemory:
		log.Warnln("using in-memory storage, data will be lost on shutdown")
		return NewMemoryBackend(params.MemorySizeBytes), nil
	case DriverRedis:
		if params.RedisClient == nil {
			return nil, errors.New("redis storage driver selected, but redis not configured")
		}
		return NewRedisBackend(params.RedisClient, false), nil
	case DriverPostgres:
		pool, err := db.NewDBPool(ctx, params.Postgres)
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		backend := NewPostgresBackend(pool)
		if err := backend.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		params.PostgresPool = pool
		return backend, nil
	case DriverSqlite:
		return NewSqliteBackend(ctx, params.SqlitePath)
	case DriverS3:
		return NewS3Backend(ctx, params.S3)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", params.Driver)
	}
}
