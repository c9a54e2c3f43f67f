package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/nakachan-ing/dayspark/internal/model"
)

const (
	EngineJSON   = "json"
	EngineSQLite = "sqlite"
	EngineRedis  = "redis"
	EngineMemory = "memory"
)

// EngineOptions tune how an engine is opened.
type EngineOptions struct {
	Logger *zap.Logger
	// ReadOnly opens the json engine without ever rewriting or moving its file.
	ReadOnly bool
}

// NewByEngine opens the KV engine named in config.Store.Engine.
func NewByEngine(ctx context.Context, config model.Config, opts EngineOptions) (KV, error) {
	logger := opts.Logger
	switch strings.ToLower(strings.TrimSpace(config.Store.Engine)) {
	case "", EngineJSON:
		if opts.ReadOnly {
			return OpenJSONKVReadOnly(StorePath(config), logger)
		}
		return NewJSONKV(StorePath(config), logger)
	case EngineSQLite:
		return NewSQLiteKV(StorePath(config))
	case EngineRedis:
		return NewRedisKV(ctx, config.Store.Redis)
	case EngineMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, config.Store.Engine)
	}
}

// StorePath resolves config.Store.Path against the data directory.
func StorePath(config model.Config) string {
	path := config.Store.Path
	if path == "" {
		path = "dayspark.json"
		if strings.EqualFold(config.Store.Engine, EngineSQLite) {
			path = "dayspark.db"
		}
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(config.DataDir, path)
}
