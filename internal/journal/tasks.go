package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/nakachan-ing/dayspark/internal/model"
	"github.com/nakachan-ing/dayspark/internal/util"
)

func (s *Service) AddTask(ctx context.Context, text, priority string) (model.Task, error) {
	draft := model.TaskDraft{
		Text:     strings.TrimSpace(text),
		Priority: strings.ToLower(strings.TrimSpace(priority)),
	}
	if err := s.check(draft); err != nil {
		return model.Task{}, err
	}
	return s.store.Tasks.Add(ctx, draft)
}

// Tasks returns the display view: filtered by query, open first, then by priority.
func (s *Service) Tasks(ctx context.Context, query string) ([]model.Task, error) {
	tasks, err := s.store.Tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return util.SortTasks(util.FilterTasks(tasks, query)), nil
}

func (s *Service) ToggleTask(ctx context.Context, id string) (model.Task, error) {
	task, found, err := s.store.Tasks.ToggleDone(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	if !found {
		return model.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return task, nil
}

func (s *Service) DeleteTask(ctx context.Context, id string) (bool, error) {
	return s.store.Tasks.Remove(ctx, id)
}

func (s *Service) ClearCompletedTasks(ctx context.Context) (int, error) {
	return s.store.Tasks.ClearCompleted(ctx)
}

func (s *Service) AddScheduleItem(ctx context.Context, title, at, priority string) (model.ScheduleItem, error) {
	draft, err := s.scheduleDraft(title, at, priority)
	if err != nil {
		return model.ScheduleItem{}, err
	}
	return s.store.Schedule.Add(ctx, draft)
}

func (s *Service) UpdateScheduleItem(ctx context.Context, id, title, at, priority string) (model.ScheduleItem, error) {
	draft, err := s.scheduleDraft(title, at, priority)
	if err != nil {
		return model.ScheduleItem{}, err
	}
	item, found, err := s.store.Schedule.Update(ctx, id, draft)
	if err != nil {
		return model.ScheduleItem{}, err
	}
	if !found {
		return model.ScheduleItem{}, fmt.Errorf("schedule item %s: %w", id, ErrNotFound)
	}
	return item, nil
}

func (s *Service) scheduleDraft(title, at, priority string) (model.ScheduleDraft, error) {
	draft := model.ScheduleDraft{
		Title:    strings.TrimSpace(title),
		Time:     strings.TrimSpace(at),
		Priority: strings.ToLower(strings.TrimSpace(priority)),
	}
	if draft.Title == "" || draft.Time == "" {
		return draft, fmt.Errorf("%w: %s", ErrInvalidInput, fieldMessages["Title"])
	}
	if err := s.check(draft); err != nil {
		return draft, err
	}
	return draft, nil
}

// Schedule returns the items ordered by time of day.
func (s *Service) Schedule(ctx context.Context) ([]model.ScheduleItem, error) {
	items, err := s.store.Schedule.List(ctx)
	if err != nil {
		return nil, err
	}
	return util.SortSchedule(items), nil
}

func (s *Service) ToggleScheduleItem(ctx context.Context, id string) (model.ScheduleItem, error) {
	item, found, err := s.store.Schedule.ToggleDone(ctx, id)
	if err != nil {
		return model.ScheduleItem{}, err
	}
	if !found {
		return model.ScheduleItem{}, fmt.Errorf("schedule item %s: %w", id, ErrNotFound)
	}
	return item, nil
}

func (s *Service) DeleteScheduleItem(ctx context.Context, id string) (bool, error) {
	return s.store.Schedule.Remove(ctx, id)
}
