package store

import (
	"context"

	"github.com/nakachan-ing/dayspark/internal/model"
)

// NoteStore keeps notes newest first.
type NoteStore struct {
	c     *collection[model.Note]
	clock clock
}

func (s *NoteStore) List(ctx context.Context) ([]model.Note, error) {
	return s.c.list(ctx)
}

func (s *NoteStore) Add(ctx context.Context, draft model.NoteDraft) (model.Note, error) {
	now := s.clock.now()
	note := model.Note{
		ID:        s.clock.newID(now),
		Text:      draft.Text,
		Timestamp: now.Format(model.DisplayTimestamp),
		CreatedAt: now,
	}
	if err := s.c.prepend(ctx, note); err != nil {
		return model.Note{}, err
	}
	return note, nil
}

func (s *NoteStore) Remove(ctx context.Context, id string) (bool, error) {
	return s.c.remove(ctx, id)
}

func (s *NoteStore) Clear(ctx context.Context) error {
	return s.c.clear(ctx)
}

// QuickLogStore keeps quick logs newest first.
type QuickLogStore struct {
	c     *collection[model.QuickLog]
	clock clock
}

func (s *QuickLogStore) List(ctx context.Context) ([]model.QuickLog, error) {
	return s.c.list(ctx)
}

func (s *QuickLogStore) Add(ctx context.Context, draft model.QuickLogDraft) (model.QuickLog, error) {
	now := s.clock.now()
	entry := model.QuickLog{
		ID:   s.clock.newID(now),
		Text: draft.Text,
		Date: now,
	}
	if err := s.c.prepend(ctx, entry); err != nil {
		return model.QuickLog{}, err
	}
	return entry, nil
}

func (s *QuickLogStore) Remove(ctx context.Context, id string) (bool, error) {
	return s.c.remove(ctx, id)
}

func (s *QuickLogStore) Clear(ctx context.Context) error {
	return s.c.clear(ctx)
}
