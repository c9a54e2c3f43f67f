package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	BackupPrefix = "dayspark-backup-"
	BackupSuffix = ".json"
)

type BackupFile struct {
	Name    string // relative to the backup directory
	Path    string
	ModTime time.Time
	Size    int64
}

// BackupFileName is the export file name for the local date of t.
func BackupFileName(t time.Time) string {
	return BackupPrefix + t.Format("2006-01-02") + BackupSuffix
}

// ListBackups walks dir and returns the backup snapshots in it, oldest first.
// A missing directory yields no files.
func ListBackups(dir string) ([]BackupFile, error) {
	var files []BackupFile

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && path == dir {
				return filepath.SkipDir
			}
			return err
		}

		if info.IsDir() {
			return nil
		}

		name := info.Name()
		if !strings.HasPrefix(name, BackupPrefix) || !strings.HasSuffix(name, BackupSuffix) {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}

		files = append(files, BackupFile{
			Name:    relPath,
			Path:    path,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan backup directory: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.Before(files[j].ModTime)
	})
	return files, nil
}

// DetectExpired returns the files last modified before now minus retention.
func DetectExpired(files []BackupFile, retention time.Duration, now time.Time) []BackupFile {
	if retention <= 0 {
		return nil
	}
	cutoff := now.Add(-retention)
	var expired []BackupFile
	for _, f := range files {
		if f.ModTime.Before(cutoff) {
			expired = append(expired, f)
		}
	}
	return expired
}
