// Package backup writes export snapshots to disk or S3, prunes old ones and
// schedules the daily run.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/nakachan-ing/dayspark/internal/model"
	"github.com/nakachan-ing/dayspark/internal/util"
)

// FileName is the download / snapshot name for an export.
func FileName(exp model.Export) string {
	return util.BackupFileName(exp.ExportDate.Local())
}

func Encode(w io.Writer, exp model.Export) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(exp); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

// WriteFile writes exp into dir and returns the file path. A snapshot for the
// same day is replaced.
func WriteFile(dir string, exp model.Export) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	target := filepath.Join(dir, FileName(exp))
	tmp, err := os.CreateTemp(dir, ".dayspark-export-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, exp); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	return target, nil
}

// Upload pushes exp to s3://bucket/prefix<file name>. It never reads back.
func Upload(ctx context.Context, exportConfig model.ExportConfig, exp model.Export) (string, error) {
	if exportConfig.Bucket == "" {
		return "", fmt.Errorf("export.bucket is not configured")
	}
	client, err := util.NewS3Client(ctx, exportConfig)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, exp); err != nil {
		return "", err
	}
	key := path.Join(exportConfig.Prefix, FileName(exp))
	if err := util.UploadToS3(ctx, client, exportConfig.Bucket, key, &buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("s3://%s/%s", exportConfig.Bucket, key), nil
}
