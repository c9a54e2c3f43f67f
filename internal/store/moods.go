package store

import (
	"context"

	"github.com/nakachan-ing/dayspark/internal/model"
)

// MoodStore keeps mood entries newest first.
type MoodStore struct {
	c     *collection[model.Mood]
	clock clock
}

func (s *MoodStore) List(ctx context.Context) ([]model.Mood, error) {
	return s.c.list(ctx)
}

// Add stores the mood; a value outside 1..5 is stored as 3.
func (s *MoodStore) Add(ctx context.Context, draft model.MoodDraft) (model.Mood, error) {
	now := s.clock.now()
	value := model.NormalizeMood(draft.Value)
	mood := model.Mood{
		ID:        s.clock.newID(now),
		Value:     value,
		Emoji:     model.MoodEmoji(value),
		Word:      model.MoodWord(value),
		Timestamp: now.Format(model.DisplayTimestamp),
		Date:      now,
	}
	if err := s.c.prepend(ctx, mood); err != nil {
		return model.Mood{}, err
	}
	return mood, nil
}

func (s *MoodStore) Remove(ctx context.Context, id string) (bool, error) {
	return s.c.remove(ctx, id)
}

func (s *MoodStore) Clear(ctx context.Context) error {
	return s.c.clear(ctx)
}
