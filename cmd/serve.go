/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nakachan-ing/dayspark/internal/backup"
	"github.com/nakachan-ing/dayspark/internal/journal"
	"github.com/nakachan-ing/dayspark/internal/logging"
	"github.com/nakachan-ing/dayspark/internal/model"
	"github.com/nakachan-ing/dayspark/internal/server"
	"github.com/nakachan-ing/dayspark/internal/store"
)

var serveAddr string

// liveJournal answers server reads. The JSON engine is reopened on every call
// so edits made by other dayspark processes show up; other engines are shared.
type liveJournal struct {
	config model.Config
	logger *zap.Logger
	shared store.KV
}

func newLiveJournal(ctx context.Context, config model.Config, logger *zap.Logger) (*liveJournal, error) {
	j := &liveJournal{config: config, logger: logger}
	engine := strings.ToLower(config.Store.Engine)
	if engine != "" && engine != store.EngineJSON {
		kv, err := store.NewByEngine(ctx, config, store.EngineOptions{Logger: logger})
		if err != nil {
			return nil, err
		}
		j.shared = kv
	}
	return j, nil
}

func (j *liveJournal) with(ctx context.Context, fn func(*journal.Service) error) error {
	kv := j.shared
	if kv == nil {
		fresh, err := store.NewByEngine(ctx, j.config, store.EngineOptions{Logger: j.logger, ReadOnly: true})
		if err != nil {
			return err
		}
		kv = fresh
	}
	st, err := store.Open(ctx, kv, store.Options{Logger: j.logger, SkipMigration: true})
	if err != nil {
		return err
	}
	return fn(journal.New(st, j.logger))
}

// readJournal runs one read against a freshly opened journal.
func readJournal[T any](ctx context.Context, j *liveJournal, fn func(*journal.Service) (T, error)) (T, error) {
	var out T
	err := j.with(ctx, func(svc *journal.Service) error {
		var err error
		out, err = fn(svc)
		return err
	})
	return out, err
}

func (j *liveJournal) Export(ctx context.Context) (model.Export, error) {
	return readJournal(ctx, j, func(svc *journal.Service) (model.Export, error) {
		return svc.Export(ctx)
	})
}

func (j *liveJournal) Settings(ctx context.Context) (model.Settings, error) {
	return readJournal(ctx, j, func(svc *journal.Service) (model.Settings, error) {
		return svc.Settings(ctx)
	})
}

func (j *liveJournal) Tasks(ctx context.Context, query string) ([]model.Task, error) {
	return readJournal(ctx, j, func(svc *journal.Service) ([]model.Task, error) {
		return svc.Tasks(ctx, query)
	})
}

func (j *liveJournal) Schedule(ctx context.Context) ([]model.ScheduleItem, error) {
	return readJournal(ctx, j, func(svc *journal.Service) ([]model.ScheduleItem, error) {
		return svc.Schedule(ctx)
	})
}

func (j *liveJournal) Memories(ctx context.Context) ([]model.Memory, error) {
	return readJournal(ctx, j, func(svc *journal.Service) ([]model.Memory, error) {
		return svc.Memories(ctx)
	})
}

func (j *liveJournal) Streak(ctx context.Context) (model.Streak, error) {
	return readJournal(ctx, j, func(svc *journal.Service) (model.Streak, error) {
		return svc.Streak(ctx)
	})
}

func (j *liveJournal) Close() error {
	if closer, ok := j.shared.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web UI and run scheduled backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := store.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if cmd.Flags().Changed("addr") {
			config.Server.Addr = serveAddr
		}

		logger, err := logging.New(config.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		live, err := newLiveJournal(ctx, *config, logger)
		if err != nil {
			return fmt.Errorf("failed to open %s store: %w", config.Store.Engine, err)
		}
		defer live.Close()

		if config.Backup.Enable {
			runner := backup.NewRunner(live, config.Backup, logger)
			scheduler := backup.NewScheduler(time.Local)
			if _, err := scheduler.ScheduleDaily(config.Backup.Time, func() {
				if _, err := runner.Run(context.Background()); err != nil {
					logger.Error("scheduled_backup_failed", zap.Error(err))
				}
			}); err != nil {
				return err
			}
			scheduler.Start()
			defer scheduler.Stop()
			logger.Info("backup_scheduled", zap.String("time", config.Backup.Time), zap.String("dir", config.Backup.BackupDir))
		}

		srv, err := server.New(config.Server, live, logger)
		if err != nil {
			return err
		}

		fmt.Println("\n🚀 ================================")
		fmt.Println("   DaySpark Started")
		fmt.Println("   ================================")
		fmt.Printf("   🌐 Server:  http://localhost%s\n", displayAddr(config.Server.Addr))
		fmt.Printf("   📊 Metrics: http://localhost%s/metrics\n", displayAddr(config.Server.Addr))
		if config.Backup.Enable {
			fmt.Printf("   💾 Backup:  daily at %s\n", config.Backup.Time)
		}
		fmt.Println("   ================================")

		if err := srv.Run(ctx); err != nil {
			return err
		}
		fmt.Println("✅ Server stopped gracefully")
		return nil
	},
}

func displayAddr(addr string) string {
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i:]
	}
	return ":" + addr
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :3000)")
}
