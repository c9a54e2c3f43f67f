package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// LoadList reads a JSON array stored under key. An absent key or a value that
// fails to parse both yield an empty slice; only engine errors are returned.
func LoadList[T any](ctx context.Context, kv KV, key string, logger *zap.Logger) ([]T, error) {
	data, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok || len(data) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn("malformed_value_recovered", zap.String("key", key), zap.Error(err))
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// LoadRecord reads a singleton JSON object. ok is false when the key is absent or malformed.
func LoadRecord[T any](ctx context.Context, kv KV, key string, logger *zap.Logger) (T, bool, error) {
	var zero T
	data, ok, err := kv.Get(ctx, key)
	if err != nil {
		return zero, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok || len(data) == 0 {
		return zero, false, nil
	}

	var record T
	if err := json.Unmarshal(data, &record); err != nil {
		logger.Warn("malformed_value_recovered", zap.String("key", key), zap.Error(err))
		return zero, false, nil
	}
	return record, true, nil
}

func Save(ctx context.Context, kv KV, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to convert %s to JSON: %w", key, err)
	}
	if err := kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
