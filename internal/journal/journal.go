// Package journal is the application layer between the outer adapters (CLI,
// HTTP) and the domain stores. It validates drafts, records streak activity
// and computes the derived views.
package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nakachan-ing/dayspark/internal/model"
	"github.com/nakachan-ing/dayspark/internal/store"
	"github.com/nakachan-ing/dayspark/internal/util"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

var fieldMessages = map[string]string{
	"Text":     "please write something first",
	"Title":    "please enter a title and time for the event",
	"Time":     "time must be HH:MM (24h)",
	"Priority": "unknown priority",
	"Src":      "please select a photo first",
}

type Service struct {
	store    *store.Store
	logger   *zap.Logger
	validate *validator.Validate

	// photoMu keeps one photo resolution+save in flight at a time.
	photoMu sync.Mutex
}

func New(st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("clock", validClock); err != nil {
		panic(fmt.Sprintf("journal: register clock validation: %v", err))
	}
	return &Service{store: st, logger: logger, validate: v}
}

func validClock(fl validator.FieldLevel) bool {
	_, _, err := util.ParseClock(fl.Field().String())
	return err == nil
}

func (s *Service) Store() *store.Store {
	return s.store
}

func (s *Service) check(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := fieldMessages[fe.Field()]; ok {
			return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
		}
		return fmt.Errorf("%w: %s failed %s", ErrInvalidInput, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// touchStreak records activity for today after a successful save. The entry
// is already stored, so a streak failure is logged rather than returned.
func (s *Service) touchStreak(ctx context.Context, kind string) {
	rec, err := s.store.Streak.Touch(ctx)
	if err != nil {
		s.logger.Warn("streak_update_failed", zap.String("kind", kind), zap.Error(err))
		return
	}
	s.logger.Debug("activity_recorded", zap.String("kind", kind), zap.Int("streak", rec.Count))
}

func (s *Service) AddNote(ctx context.Context, text string) (model.Note, error) {
	draft := model.NoteDraft{Text: strings.TrimSpace(text)}
	if err := s.check(draft); err != nil {
		return model.Note{}, err
	}
	note, err := s.store.Notes.Add(ctx, draft)
	if err != nil {
		return model.Note{}, err
	}
	s.touchStreak(ctx, model.KindNote)
	return note, nil
}

func (s *Service) Notes(ctx context.Context) ([]model.Note, error) {
	return s.store.Notes.List(ctx)
}

func (s *Service) DeleteNote(ctx context.Context, id string) (bool, error) {
	return s.store.Notes.Remove(ctx, id)
}

func (s *Service) ClearNotes(ctx context.Context) error {
	return s.store.Notes.Clear(ctx)
}

func (s *Service) AddQuickLog(ctx context.Context, text string) (model.QuickLog, error) {
	draft := model.QuickLogDraft{Text: strings.TrimSpace(text)}
	if err := s.check(draft); err != nil {
		return model.QuickLog{}, err
	}
	entry, err := s.store.QuickLogs.Add(ctx, draft)
	if err != nil {
		return model.QuickLog{}, err
	}
	s.touchStreak(ctx, model.KindQuickLog)
	return entry, nil
}

func (s *Service) QuickLogs(ctx context.Context) ([]model.QuickLog, error) {
	return s.store.QuickLogs.List(ctx)
}

func (s *Service) DeleteQuickLog(ctx context.Context, id string) (bool, error) {
	return s.store.QuickLogs.Remove(ctx, id)
}

// AddMood saves a mood. Out of range values are stored as neutral, not rejected.
func (s *Service) AddMood(ctx context.Context, value int) (model.Mood, error) {
	mood, err := s.store.Moods.Add(ctx, model.MoodDraft{Value: value})
	if err != nil {
		return model.Mood{}, err
	}
	s.touchStreak(ctx, model.KindMood)
	return mood, nil
}

func (s *Service) Moods(ctx context.Context) ([]model.Mood, error) {
	return s.store.Moods.List(ctx)
}

func (s *Service) DeleteMood(ctx context.Context, id string) (bool, error) {
	return s.store.Moods.Remove(ctx, id)
}

func (s *Service) ClearMoods(ctx context.Context) error {
	return s.store.Moods.Clear(ctx)
}

func (s *Service) Streak(ctx context.Context) (model.Streak, error) {
	return s.store.Streak.Get(ctx)
}
