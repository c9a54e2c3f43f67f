package store

import (
	"context"
	"strings"

	"github.com/nakachan-ing/dayspark/internal/model"
)

// PhotoStore keeps photos newest first. Images are stored inline as data URIs.
type PhotoStore struct {
	c     *collection[model.Photo]
	clock clock
}

func (s *PhotoStore) List(ctx context.Context) ([]model.Photo, error) {
	return s.c.list(ctx)
}

func (s *PhotoStore) Add(ctx context.Context, draft model.PhotoDraft) (model.Photo, error) {
	now := s.clock.now()
	caption := strings.TrimSpace(draft.Caption)
	if caption == "" {
		caption = model.DefaultCaption
	}
	photo := model.Photo{
		ID:      s.clock.newID(now),
		Src:     draft.Src,
		Caption: caption,
		Date:    now,
	}
	if err := s.c.prepend(ctx, photo); err != nil {
		return model.Photo{}, err
	}
	return photo, nil
}

func (s *PhotoStore) Remove(ctx context.Context, id string) (bool, error) {
	return s.c.remove(ctx, id)
}

func (s *PhotoStore) Clear(ctx context.Context) error {
	return s.c.clear(ctx)
}
