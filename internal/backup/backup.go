package backup

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/nakachan-ing/dayspark/internal/model"
	"github.com/nakachan-ing/dayspark/internal/util"
)

// Exporter produces the snapshot to back up.
type Exporter interface {
	Export(ctx context.Context) (model.Export, error)
}

type Runner struct {
	exporter Exporter
	config   model.BackupConfig
	logger   *zap.Logger
	now      func() time.Time
}

func NewRunner(exporter Exporter, config model.BackupConfig, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{exporter: exporter, config: config, logger: logger, now: time.Now}
}

// Run writes today's snapshot into the backup directory, then prunes expired ones.
func (r *Runner) Run(ctx context.Context) (string, error) {
	exp, err := r.exporter.Export(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to export: %w", err)
	}
	path, err := WriteFile(r.config.BackupDir, exp)
	if err != nil {
		return "", err
	}
	r.logger.Info("backup_written", zap.String("path", path))

	if _, err := r.Prune(); err != nil {
		r.logger.Warn("backup_prune_failed", zap.Error(err))
	}
	return path, nil
}

// Prune deletes snapshots older than the retention period (in days).
func (r *Runner) Prune() ([]util.BackupFile, error) {
	files, err := util.ListBackups(r.config.BackupDir)
	if err != nil {
		return nil, err
	}
	retention := time.Duration(r.config.Retention) * 24 * time.Hour
	expired := util.DetectExpired(files, retention, r.now())

	removed := make([]util.BackupFile, 0, len(expired))
	for _, f := range expired {
		if err := os.Remove(f.Path); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", f.Path, err)
		}
		r.logger.Info("backup_pruned", zap.String("path", f.Path))
		removed = append(removed, f)
	}
	return removed, nil
}
