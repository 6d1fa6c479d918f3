package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alawael/platform/internal/pkg/logger"
)

// FileStore keeps each key as a JSON file under a base directory. Writes go
// through a temp file and rename so a value is always either the old or the
// new document, never a torn one.
type FileStore struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStore creates a FileStore rooted at basePath, creating the
// directory if needed.
func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &FileStore{basePath: basePath}, nil
}

// keyPath maps a logical key to a file path. Separator characters in keys
// (session:<id>, enrollment:<id>) are flattened so every key stays a single
// file in the base directory.
func (fs *FileStore) keyPath(key string) string {
	name := strings.NewReplacer(":", "_", "/", "_", string(filepath.Separator), "_").Replace(key)
	return filepath.Join(fs.basePath, name+".json")
}

// Get returns the stored value, or (nil, nil) if the key is absent.
func (fs *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	data, err := os.ReadFile(fs.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return data, nil
}

// Set replaces the stored value for key.
func (fs *FileStore) Set(ctx context.Context, key string, value []byte) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	path := fs.keyPath(key)
	tmp, err := os.CreateTemp(fs.basePath, ".write-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for key %s: %w", key, err)
	}

	if _, err = tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to flush key %s: %w", key, err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace key %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is a no-op.
func (fs *FileStore) Delete(ctx context.Context, key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.keyPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Close implements Store. The FileStore holds no long-lived resources.
func (fs *FileStore) Close() error {
	return nil
}
