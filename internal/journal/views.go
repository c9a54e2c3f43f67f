package journal

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/nakachan-ing/dayspark/internal/memory"
	"github.com/nakachan-ing/dayspark/internal/model"
)

// Memories recomputes the feed from the current collections.
func (s *Service) Memories(ctx context.Context) ([]model.Memory, error) {
	src, err := s.sources(ctx)
	if err != nil {
		return nil, err
	}
	return memory.Build(src, memory.MaxItems), nil
}

func (s *Service) sources(ctx context.Context) (memory.Sources, error) {
	var (
		src memory.Sources
		err error
	)
	if src.Notes, err = s.store.Notes.List(ctx); err != nil {
		return src, err
	}
	if src.Photos, err = s.store.Photos.List(ctx); err != nil {
		return src, err
	}
	if src.Moods, err = s.store.Moods.List(ctx); err != nil {
		return src, err
	}
	if src.QuickLogs, err = s.store.QuickLogs.List(ctx); err != nil {
		return src, err
	}
	return src, nil
}

func (s *Service) Stats(ctx context.Context) (model.Stats, error) {
	src, err := s.sources(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	tasks, err := s.store.Tasks.List(ctx)
	if err != nil {
		return model.Stats{}, err
	}

	stats := model.Stats{
		TotalTasks:  len(tasks),
		TotalNotes:  len(src.Notes),
		TotalPhotos: len(src.Photos),
		TotalLogs:   len(src.QuickLogs),
		TotalMoods:  len(src.Moods),
	}
	for _, t := range tasks {
		if t.Done {
			stats.CompletedTasks++
		}
	}
	if stats.TotalTasks > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100))
	}
	if len(src.Moods) > 0 {
		sum := 0
		for _, m := range src.Moods {
			sum += m.Value
		}
		stats.AvgMood = math.Round(float64(sum)/float64(len(src.Moods))*10) / 10
	}
	stats.TotalEntries = stats.TotalPhotos + stats.TotalLogs + stats.TotalMoods
	return stats, nil
}

// Export snapshots every collection.
func (s *Service) Export(ctx context.Context) (model.Export, error) {
	src, err := s.sources(ctx)
	if err != nil {
		return model.Export{}, err
	}
	exp := model.Export{
		ID:         uuid.NewString(),
		Notes:      src.Notes,
		QuickLogs:  src.QuickLogs,
		Photos:     src.Photos,
		Moods:      src.Moods,
		ExportDate: s.store.Now(),
	}
	if exp.Schedule, err = s.store.Schedule.List(ctx); err != nil {
		return model.Export{}, err
	}
	if exp.Tasks, err = s.store.Tasks.List(ctx); err != nil {
		return model.Export{}, err
	}
	if exp.Streak, err = s.store.Streak.Get(ctx); err != nil {
		return model.Export{}, err
	}
	if exp.Settings, err = s.store.Settings.Get(ctx); err != nil {
		return model.Export{}, err
	}
	return exp, nil
}

func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.store.ClearAll(ctx); err != nil {
		return err
	}
	s.logger.Info("all_data_cleared")
	return nil
}

func (s *Service) Settings(ctx context.Context) (model.Settings, error) {
	return s.store.Settings.Get(ctx)
}

func (s *Service) SaveSettings(ctx context.Context, settings model.Settings) error {
	if err := s.check(settings); err != nil {
		return err
	}
	return s.store.Settings.Save(ctx, settings)
}

func (s *Service) ResetSettings(ctx context.Context) error {
	return s.store.Settings.Reset(ctx)
}
