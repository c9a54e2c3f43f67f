package store

import (
	"context"
	"errors"
)

// KV is the persistent key-value mapping every domain store is layered on.
// Values are JSON documents; Set overwrites the whole value.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

var ErrUnknownEngine = errors.New("unsupported store engine")
