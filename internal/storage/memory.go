package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
)

var _ Backend = (*MemoryBackend)(nil)

// MemoryBackend is a bounded in-process store. Like browser local storage, it
// refuses values that do not fit, reported as ErrQuotaExceeded.
type MemoryBackend struct {
	cache *freecache.Cache
}

// NewMemoryBackend creates a memory backend of the given size in bytes.
// freecache enforces a minimum size of 512KB.
func NewMemoryBackend(sizeBytes int) *MemoryBackend {
	return &MemoryBackend{
		cache: freecache.NewCache(sizeBytes),
	}
}

func (b *MemoryBackend) Read(_ context.Context, key string) ([]byte, error) {
	value, err := b.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}

func (b *MemoryBackend) Write(_ context.Context, key string, value []byte) error {
	// 0 expiration -> entry is kept until evicted
	if err := b.cache.Set([]byte(key), value, 0); err != nil {
		if errors.Is(err, freecache.ErrLargeEntry) || errors.Is(err, freecache.ErrLargeKey) {
			return fmt.Errorf("write %s (%d bytes): %w", key, len(value), ErrQuotaExceeded)
		}
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (b *MemoryBackend) Close() error {
	b.cache.Clear()
	return nil
}
