package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var _ Backend = (*FileBackend)(nil)

// FileBackend keeps every key in its own JSON file under the root dir.
type FileBackend struct {
	root string
}

func NewFileBackend(root string) (*FileBackend, error) {
	if root == "" {
		return nil, errors.New("file storage root path empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root dir: %w", err)
	}
	return &FileBackend{
		root: root,
	}, nil
}

func (b *FileBackend) path(key string) string {
	// keys are flat names, never paths
	key = strings.ReplaceAll(filepath.Base(key), string(filepath.Separator), "_")
	return filepath.Join(b.root, key+".json")
}

func (b *FileBackend) Read(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

// Write replaces the file atomically, by writing to a temp file first.
func (b *FileBackend) Write(_ context.Context, key string, value []byte) error {
	target := b.path(key)
	tmp, err := os.CreateTemp(b.root, filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (b *FileBackend) Close() error {
	return nil
}
