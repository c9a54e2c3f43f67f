package store

import (
	"context"

	"github.com/nakachan-ing/dayspark/internal/model"
)

// TaskStore keeps tasks in insertion order. Display order is computed by util.SortTasks.
type TaskStore struct {
	c     *collection[model.Task]
	clock clock
}

func (s *TaskStore) List(ctx context.Context) ([]model.Task, error) {
	return s.c.list(ctx)
}

func (s *TaskStore) Add(ctx context.Context, draft model.TaskDraft) (model.Task, error) {
	now := s.clock.now()
	priority := draft.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	task := model.Task{
		ID:       s.clock.newID(now),
		Text:     draft.Text,
		Priority: priority,
		Done:     false,
		Date:     now,
	}
	if err := s.c.append(ctx, task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// ToggleDone flips the done flag. found is false when no task has the id.
func (s *TaskStore) ToggleDone(ctx context.Context, id string) (model.Task, bool, error) {
	return s.c.modify(ctx, id, func(t *model.Task) {
		t.Done = !t.Done
	})
}

func (s *TaskStore) Remove(ctx context.Context, id string) (bool, error) {
	return s.c.remove(ctx, id)
}

func (s *TaskStore) ClearCompleted(ctx context.Context) (int, error) {
	return s.c.removeWhere(ctx, func(t model.Task) bool { return t.Done })
}

func (s *TaskStore) Clear(ctx context.Context) error {
	return s.c.clear(ctx)
}
