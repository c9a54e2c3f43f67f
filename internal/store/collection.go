package store

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// collection owns one JSON array key. Every mutation is a locked
// read-modify-write of the whole array.
type collection[T any] struct {
	kv     KV
	key    string
	logger *zap.Logger
	idOf   func(T) string
	mu     sync.Mutex
}

func newCollection[T any](kv KV, key string, logger *zap.Logger, idOf func(T) string) *collection[T] {
	return &collection[T]{kv: kv, key: key, logger: logger, idOf: idOf}
}

func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return LoadList[T](ctx, c.kv, c.key, c.logger)
}

// update runs fn on the current items and persists the result when fn reports a change.
func (c *collection[T]) update(ctx context.Context, fn func([]T) ([]T, bool)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := LoadList[T](ctx, c.kv, c.key, c.logger)
	if err != nil {
		return err
	}
	next, changed := fn(items)
	if !changed {
		return nil
	}
	return Save(ctx, c.kv, c.key, next)
}

func (c *collection[T]) prepend(ctx context.Context, item T) error {
	return c.update(ctx, func(items []T) ([]T, bool) {
		return append([]T{item}, items...), true
	})
}

func (c *collection[T]) append(ctx context.Context, item T) error {
	return c.update(ctx, func(items []T) ([]T, bool) {
		return append(items, item), true
	})
}

// remove deletes the item with id. A missing id leaves storage untouched.
func (c *collection[T]) remove(ctx context.Context, id string) (bool, error) {
	found := false
	err := c.update(ctx, func(items []T) ([]T, bool) {
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if c.idOf(item) == id {
				found = true
				continue
			}
			kept = append(kept, item)
		}
		return kept, found
	})
	return found, err
}

// modify applies fn to the item with id and returns the updated item.
func (c *collection[T]) modify(ctx context.Context, id string, fn func(*T)) (T, bool, error) {
	var (
		result T
		found  bool
	)
	err := c.update(ctx, func(items []T) ([]T, bool) {
		for i := range items {
			if c.idOf(items[i]) == id {
				fn(&items[i])
				result = items[i]
				found = true
				break
			}
		}
		return items, found
	})
	return result, found, err
}

// removeWhere deletes every item matching pred and reports how many were removed.
func (c *collection[T]) removeWhere(ctx context.Context, pred func(T) bool) (int, error) {
	removed := 0
	err := c.update(ctx, func(items []T) ([]T, bool) {
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if pred(item) {
				removed++
				continue
			}
			kept = append(kept, item)
		}
		return kept, removed > 0
	})
	return removed, err
}

func (c *collection[T]) clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Remove(ctx, c.key)
}
