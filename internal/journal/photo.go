package journal

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/nakachan-ing/dayspark/internal/model"
)

// AddPhoto saves a photo whose source is already a data URI.
func (s *Service) AddPhoto(ctx context.Context, draft model.PhotoDraft) (model.Photo, error) {
	s.photoMu.Lock()
	defer s.photoMu.Unlock()
	return s.addPhotoLocked(ctx, draft)
}

// AddPhotoFromFile resolves the image at path to a data URI and saves it.
// Nothing is stored unless the file was read completely.
func (s *Service) AddPhotoFromFile(ctx context.Context, path, caption string, markToday bool) (model.Photo, error) {
	if strings.TrimSpace(path) == "" {
		return model.Photo{}, fmt.Errorf("%w: %s", ErrInvalidInput, fieldMessages["Src"])
	}

	s.photoMu.Lock()
	defer s.photoMu.Unlock()

	src, err := ReadImageDataURI(path)
	if err != nil {
		return model.Photo{}, err
	}
	return s.addPhotoLocked(ctx, model.PhotoDraft{Src: src, Caption: caption, MarkToday: markToday})
}

func (s *Service) addPhotoLocked(ctx context.Context, draft model.PhotoDraft) (model.Photo, error) {
	if err := s.check(draft); err != nil {
		return model.Photo{}, err
	}
	photo, err := s.store.Photos.Add(ctx, draft)
	if err != nil {
		return model.Photo{}, err
	}
	if draft.MarkToday {
		s.touchStreak(ctx, model.KindPhoto)
	}
	return photo, nil
}

func (s *Service) Photos(ctx context.Context) ([]model.Photo, error) {
	return s.store.Photos.List(ctx)
}

func (s *Service) DeletePhoto(ctx context.Context, id string) (bool, error) {
	return s.store.Photos.Remove(ctx, id)
}

// ReadImageDataURI reads an image file into a base64 data URI.
func ReadImageDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: cannot read %s: %v", ErrInvalidInput, path, err)
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: %s is not an image (%s)", ErrInvalidInput, path, contentType)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
