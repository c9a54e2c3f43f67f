package store

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid"
	"go.uber.org/zap"

	"github.com/nakachan-ing/dayspark/internal/model"
)

type Options struct {
	Logger *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
	// SkipMigration disables the legacy key import done by Open.
	SkipMigration bool
}

// clock hands out timestamps and ids to the domain stores.
type clock struct {
	now func() time.Time
}

func (c clock) newID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), rand.Reader).String()
}

// Store groups the domain stores sharing one KV mapping.
type Store struct {
	kv     KV
	logger *zap.Logger
	clock  clock

	Notes     *NoteStore
	QuickLogs *QuickLogStore
	Photos    *PhotoStore
	Schedule  *ScheduleStore
	Tasks     *TaskStore
	Moods     *MoodStore
	Streak    *StreakStore
	Settings  *SettingsStore
}

func Open(ctx context.Context, kv KV, opts Options) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := clock{now: opts.Now}
	if c.now == nil {
		c.now = time.Now
	}

	s := &Store{
		kv:     kv,
		logger: logger,
		clock:  c,
		Notes: &NoteStore{
			c:     newCollection(kv, KeyNotes, logger, func(n model.Note) string { return n.ID }),
			clock: c,
		},
		QuickLogs: &QuickLogStore{
			c:     newCollection(kv, KeyQuickLogs, logger, func(l model.QuickLog) string { return l.ID }),
			clock: c,
		},
		Photos: &PhotoStore{
			c:     newCollection(kv, KeyPhotos, logger, func(p model.Photo) string { return p.ID }),
			clock: c,
		},
		Schedule: &ScheduleStore{
			c:     newCollection(kv, KeySchedule, logger, func(i model.ScheduleItem) string { return i.ID }),
			clock: c,
		},
		Tasks: &TaskStore{
			c:     newCollection(kv, KeyTasks, logger, func(t model.Task) string { return t.ID }),
			clock: c,
		},
		Moods: &MoodStore{
			c:     newCollection(kv, KeyMoods, logger, func(m model.Mood) string { return m.ID }),
			clock: c,
		},
		Streak:   &StreakStore{kv: kv, logger: logger, clock: c},
		Settings: &SettingsStore{kv: kv, logger: logger},
	}

	if !opts.SkipMigration {
		report, err := s.MigrateLegacy(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate legacy keys: %w", err)
		}
		if report.Total() > 0 {
			logger.Info("legacy_keys_migrated",
				zap.Int("notes", report.Notes),
				zap.Int("schedule", report.Schedule),
				zap.Int("moods", report.Moods),
			)
		}
	}
	return s, nil
}

func (s *Store) Now() time.Time {
	return s.clock.now()
}

// ClearAll empties every collection and singleton, legacy keys included.
func (s *Store) ClearAll(ctx context.Context) error {
	clears := []func(context.Context) error{
		s.Notes.Clear,
		s.QuickLogs.Clear,
		s.Photos.Clear,
		s.Schedule.Clear,
		s.Tasks.Clear,
		s.Moods.Clear,
		s.Streak.Reset,
		s.Settings.Reset,
	}
	for _, clearFn := range clears {
		if err := clearFn(ctx); err != nil {
			return err
		}
	}
	for _, key := range LegacyKeys {
		if err := s.kv.Remove(ctx, key); err != nil {
			return fmt.Errorf("failed to remove %s: %w", key, err)
		}
	}
	return nil
}
