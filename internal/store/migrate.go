package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/nakachan-ing/dayspark/internal/model"
)

type legacyNote struct {
	ID        int64  `json:"id"` // epoch ms
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type legacyScheduleItem struct {
	Title    string `json:"title"`
	Time     string `json:"time"`
	Priority string `json:"priority"`
	Done     bool   `json:"done"`
}

type legacyMood struct {
	ID        int64  `json:"id"` // epoch ms
	Mood      int    `json:"mood"`
	Emoji     string `json:"emoji"`
	Word      string `json:"word"`
	Timestamp string `json:"timestamp"`
}

type MigrationReport struct {
	Notes    int
	Schedule int
	Moods    int
}

func (r MigrationReport) Total() int {
	return r.Notes + r.Schedule + r.Moods
}

// MigrateLegacy imports the bare "notes", "schedule" and "moods" keys into the
// canonical keys and removes them. A legacy value that cannot be parsed is left in place.
func (s *Store) MigrateLegacy(ctx context.Context) (MigrationReport, error) {
	var report MigrationReport

	notes, ok, err := loadLegacy[legacyNote](ctx, s.kv, LegacyKeyNotes, s.logger)
	if err != nil {
		return report, err
	}
	if ok {
		converted := make([]model.Note, 0, len(notes))
		for _, n := range notes {
			created := time.UnixMilli(n.ID)
			converted = append(converted, model.Note{
				ID:        strconv.FormatInt(n.ID, 10),
				Text:      n.Text,
				Timestamp: n.Timestamp,
				CreatedAt: created,
			})
		}
		err := s.Notes.c.update(ctx, func(items []model.Note) ([]model.Note, bool) {
			merged := append(items, converted...)
			sort.SliceStable(merged, func(i, j int) bool {
				return merged[i].CreatedAt.After(merged[j].CreatedAt)
			})
			return merged, true
		})
		if err != nil {
			return report, err
		}
		if err := s.kv.Remove(ctx, LegacyKeyNotes); err != nil {
			return report, fmt.Errorf("failed to remove %s: %w", LegacyKeyNotes, err)
		}
		report.Notes = len(converted)
	}

	items, ok, err := loadLegacy[legacyScheduleItem](ctx, s.kv, LegacyKeySchedule, s.logger)
	if err != nil {
		return report, err
	}
	if ok {
		now := s.clock.now()
		converted := make([]model.ScheduleItem, 0, len(items))
		for _, it := range items {
			converted = append(converted, model.ScheduleItem{
				ID:       s.clock.newID(now),
				Title:    it.Title,
				Time:     it.Time,
				Priority: schedulePriority(it.Priority),
				Done:     it.Done,
			})
		}
		err := s.Schedule.c.update(ctx, func(existing []model.ScheduleItem) ([]model.ScheduleItem, bool) {
			return append(existing, converted...), true
		})
		if err != nil {
			return report, err
		}
		if err := s.kv.Remove(ctx, LegacyKeySchedule); err != nil {
			return report, fmt.Errorf("failed to remove %s: %w", LegacyKeySchedule, err)
		}
		report.Schedule = len(converted)
	}

	moods, ok, err := loadLegacy[legacyMood](ctx, s.kv, LegacyKeyMoods, s.logger)
	if err != nil {
		return report, err
	}
	if ok {
		converted := make([]model.Mood, 0, len(moods))
		for _, m := range moods {
			value := model.NormalizeMood(m.Mood)
			converted = append(converted, model.Mood{
				ID:        strconv.FormatInt(m.ID, 10),
				Value:     value,
				Emoji:     model.MoodEmoji(value),
				Word:      model.MoodWord(value),
				Timestamp: m.Timestamp,
				Date:      time.UnixMilli(m.ID),
			})
		}
		err := s.Moods.c.update(ctx, func(existing []model.Mood) ([]model.Mood, bool) {
			merged := append(existing, converted...)
			sort.SliceStable(merged, func(i, j int) bool {
				return merged[i].Date.After(merged[j].Date)
			})
			return merged, true
		})
		if err != nil {
			return report, err
		}
		if err := s.kv.Remove(ctx, LegacyKeyMoods); err != nil {
			return report, fmt.Errorf("failed to remove %s: %w", LegacyKeyMoods, err)
		}
		report.Moods = len(converted)
	}

	return report, nil
}

// loadLegacy reports ok=false for an absent key and for a value that is not a JSON array of T.
func loadLegacy[T any](ctx context.Context, kv KV, key string, logger *zap.Logger) ([]T, bool, error) {
	data, found, err := kv.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found {
		return nil, false, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn("legacy_value_unreadable", zap.String("key", key), zap.Error(err))
		return nil, false, nil
	}
	return items, true, nil
}
