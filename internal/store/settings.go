package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/nakachan-ing/dayspark/internal/model"
)

type SettingsStore struct {
	kv     KV
	logger *zap.Logger
	mu     sync.Mutex
}

// Get returns the saved settings with missing fields filled from the defaults.
func (s *SettingsStore) Get(ctx context.Context) (model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings, _, err := LoadRecord[model.Settings](ctx, s.kv, KeySettings, s.logger)
	if err != nil {
		return model.Settings{}, err
	}
	return settings.WithDefaults(), nil
}

func (s *SettingsStore) Save(ctx context.Context, settings model.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Save(ctx, s.kv, KeySettings, settings)
}

func (s *SettingsStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Remove(ctx, KeySettings)
}
