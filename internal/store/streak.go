package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/nakachan-ing/dayspark/internal/model"
	"github.com/nakachan-ing/dayspark/internal/streak"
)

type StreakStore struct {
	kv     KV
	logger *zap.Logger
	clock  clock
	mu     sync.Mutex
}

// Get returns the stored record, or a zero count when nothing was recorded yet.
func (s *StreakStore) Get(ctx context.Context) (model.Streak, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, _, err := LoadRecord[model.Streak](ctx, s.kv, KeyStreak, s.logger)
	return rec, err
}

// Touch records activity for today.
func (s *StreakStore) Touch(ctx context.Context) (model.Streak, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, _, err := LoadRecord[model.Streak](ctx, s.kv, KeyStreak, s.logger)
	if err != nil {
		return model.Streak{}, err
	}
	next, changed := streak.Advance(rec, s.clock.now())
	if !changed {
		return rec, nil
	}
	if err := Save(ctx, s.kv, KeyStreak, next); err != nil {
		return model.Streak{}, err
	}
	return next, nil
}

func (s *StreakStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Remove(ctx, KeyStreak)
}
