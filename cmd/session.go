package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/nakachan-ing/dayspark/internal/journal"
	"github.com/nakachan-ing/dayspark/internal/logging"
	"github.com/nakachan-ing/dayspark/internal/model"
	"github.com/nakachan-ing/dayspark/internal/store"
	"github.com/nakachan-ing/dayspark/internal/util"
)

const lockFileName = "dayspark.lock"

// session is one opened journal: config, logger, storage engine and, for
// mutating commands, the data directory lock.
type session struct {
	config   *model.Config
	logger   *zap.Logger
	kv       store.KV
	journal  *journal.Service
	lockPath string
}

type sessionMode int

const (
	readOnly sessionMode = iota
	mutating
	// mutatingNoMigrate takes the lock but leaves legacy keys for an explicit migration.
	mutatingNoMigrate
)

func openSession(ctx context.Context, command string, mode sessionMode) (*session, error) {
	config, err := store.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	logger, err := logging.New(config.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	s := &session{config: config, logger: logger}
	if mode != readOnly {
		s.lockPath = filepath.Join(config.DataDir, lockFileName)
		if err := util.CreateLockFile(s.lockPath, command); err != nil {
			s.lockPath = ""
			return nil, err
		}
	}

	kv, err := store.NewByEngine(ctx, *config, store.EngineOptions{
		Logger:   logger,
		ReadOnly: mode == readOnly,
	})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to open %s store: %w", config.Store.Engine, err)
	}
	s.kv = kv

	st, err := store.Open(ctx, kv, store.Options{
		Logger:        logger,
		SkipMigration: mode != mutating,
	})
	if err != nil {
		s.Close()
		return nil, err
	}
	s.journal = journal.New(st, logger)

	logger.Debug("session_opened", zap.String("command", command), zap.String("engine", config.Store.Engine))
	return s, nil
}

func (s *session) Close() {
	if closer, ok := s.kv.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			s.logger.Warn("store_close_failed", zap.Error(err))
		}
	}
	if s.lockPath != "" {
		if err := util.RemoveLockFile(s.lockPath); err != nil {
			s.logger.Warn("lock_remove_failed", zap.Error(err))
		}
	}
	_ = s.logger.Sync()
}

// confirm asks a yes/no question on stdin. --yes answers it.
func confirm(prompt string) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}

// textArg joins positional args, or opens the editor when there are none.
func textArg(args []string, config model.Config) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return util.ComposeInEditor(config)
}
