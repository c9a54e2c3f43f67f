package store

import (
	"context"
	"strings"

	"github.com/nakachan-ing/dayspark/internal/model"
)

// ScheduleStore keeps schedule items in insertion order, addressed by id.
type ScheduleStore struct {
	c     *collection[model.ScheduleItem]
	clock clock
}

func (s *ScheduleStore) List(ctx context.Context) ([]model.ScheduleItem, error) {
	return s.c.list(ctx)
}

func (s *ScheduleStore) Add(ctx context.Context, draft model.ScheduleDraft) (model.ScheduleItem, error) {
	item := model.ScheduleItem{
		ID:       s.clock.newID(s.clock.now()),
		Title:    draft.Title,
		Time:     draft.Time,
		Priority: schedulePriority(draft.Priority),
	}
	if err := s.c.append(ctx, item); err != nil {
		return model.ScheduleItem{}, err
	}
	return item, nil
}

// Update replaces title, time and priority in place. The id and done flag are kept.
func (s *ScheduleStore) Update(ctx context.Context, id string, draft model.ScheduleDraft) (model.ScheduleItem, bool, error) {
	return s.c.modify(ctx, id, func(item *model.ScheduleItem) {
		item.Title = draft.Title
		item.Time = draft.Time
		item.Priority = schedulePriority(draft.Priority)
	})
}

func (s *ScheduleStore) ToggleDone(ctx context.Context, id string) (model.ScheduleItem, bool, error) {
	return s.c.modify(ctx, id, func(item *model.ScheduleItem) {
		item.Done = !item.Done
	})
}

func (s *ScheduleStore) Remove(ctx context.Context, id string) (bool, error) {
	return s.c.remove(ctx, id)
}

func (s *ScheduleStore) Clear(ctx context.Context) error {
	return s.c.clear(ctx)
}

// schedulePriority maps anything outside low/normal/high to normal.
func schedulePriority(p string) string {
	switch p := strings.ToLower(strings.TrimSpace(p)); p {
	case model.PriorityLow, model.PriorityNormal, model.PriorityHigh:
		return p
	default:
		return model.PriorityNormal
	}
}
