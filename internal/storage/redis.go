package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

var _ Backend = (*RedisBackend)(nil)

type RedisBackend struct {
	rdb *redis.Client
	// ownsClient is false when the client is shared with others (e.g. rate limiter)
	ownsClient bool
}

func NewRedisBackend(rdb *redis.Client, ownsClient bool) *RedisBackend {
	return &RedisBackend{
		rdb:        rdb,
		ownsClient: ownsClient,
	}
}

func (b *RedisBackend) Read(ctx context.Context, key string) ([]byte, error) {
	value, err := b.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

func (b *RedisBackend) Write(ctx context.Context, key string, value []byte) error {
	if err := b.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (b *RedisBackend) Close() error {
	if !b.ownsClient {
		return nil
	}
	return b.rdb.Close()
}
