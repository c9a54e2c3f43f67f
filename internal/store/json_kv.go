package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrReadOnly is returned by writes on a store opened read-only.
var ErrReadOnly = errors.New("store is opened read-only")

// JSONKV stores the whole mapping in one JSON document on disk.
type JSONKV struct {
	filePath string
	logger   *zap.Logger
	readOnly bool
	mu       sync.RWMutex
	values   map[string]json.RawMessage
}

// NewJSONKV opens the file for reading and writing. A file that does not
// parse is moved aside so the next write starts a fresh document.
func NewJSONKV(filePath string, logger *zap.Logger) (*JSONKV, error) {
	return openJSONKV(filePath, logger, false)
}

// OpenJSONKVReadOnly opens the file without ever touching it on disk. A file
// that does not parse reads as empty and stays where it is.
func OpenJSONKVReadOnly(filePath string, logger *zap.Logger) (*JSONKV, error) {
	return openJSONKV(filePath, logger, true)
}

func openJSONKV(filePath string, logger *zap.Logger, readOnly bool) (*JSONKV, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &JSONKV{
		filePath: filePath,
		logger:   logger,
		readOnly: readOnly,
		values:   make(map[string]json.RawMessage),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *JSONKV) Set(_ context.Context, key string, value []byte) error {
	if s.readOnly {
		return ErrReadOnly
	}
	compacted, err := compactValue(value)
	if err != nil {
		return fmt.Errorf("value for %s is not valid JSON: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.values[key]
	s.values[key] = compacted
	if err := s.persistLocked(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

func (s *JSONKV) Remove(_ context.Context, key string) error {
	if s.readOnly {
		return ErrReadOnly
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.values[key]
	if !had {
		return nil
	}
	delete(s.values, key)
	if err := s.persistLocked(); err != nil {
		s.values[key] = prev
		return err
	}
	return nil
}

func (s *JSONKV) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *JSONKV) Path() string {
	return s.filePath
}

func (s *JSONKV) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read store file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var values map[string]json.RawMessage
	if err := json.Unmarshal(data, &values); err != nil {
		if s.readOnly {
			s.logger.Warn("store_file_corrupt", zap.String("path", s.filePath), zap.Error(err))
			return nil
		}
		// Keep the unreadable file aside and start from an empty mapping.
		aside := fmt.Sprintf("%s.corrupt-%s", s.filePath, time.Now().Format("20060102150405"))
		if renameErr := os.Rename(s.filePath, aside); renameErr != nil {
			return fmt.Errorf("failed to move corrupt store file: %w", renameErr)
		}
		s.logger.Warn("store_file_corrupt",
			zap.String("path", s.filePath),
			zap.String("moved_to", aside),
			zap.Error(err),
		)
		return nil
	}
	// The file is indented on disk; values are held compact so Get returns
	// the same bytes before and after a reopen.
	s.values = make(map[string]json.RawMessage, len(values))
	for k, v := range values {
		compacted, err := compactValue(v)
		if err != nil {
			return fmt.Errorf("failed to read value %s: %w", k, err)
		}
		s.values[k] = compacted
	}
	return nil
}

func compactValue(value []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

func (s *JSONKV) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}

	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
