package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alawael/platform/internal/pkg/logger"
	"github.com/alawael/platform/internal/storage"
)

// getList loads a whole stored collection. A missing key yields an empty
// slice; corrupted content is recovered by resetting to empty so a bad
// stored value can never take an operation down.
func getList[T any](ctx context.Context, store storage.Store, key string) ([]T, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Corrupted stored collection, treating as empty")
		return []T{}, nil
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

// saveList atomically replaces a whole stored collection.
func saveList[T any](ctx context.Context, store storage.Store, key string, list []T) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}
