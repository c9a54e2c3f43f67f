package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestBackupFileName(t *testing.T) {
	got := BackupFileName(time.Date(2025, 1, 7, 23, 0, 0, 0, time.Local))
	if got != "dayspark-backup-2025-01-07.json" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestListBackupsAndDetectExpired(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	write := func(name string, age time.Duration) {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		mt := now.Add(-age)
		if err := os.Chtimes(path, mt, mt); err != nil {
			t.Fatalf("Chtimes() error = %v", err)
		}
	}
	write("dayspark-backup-old.json", 40*24*time.Hour)
	write("dayspark-backup-new.json", time.Hour)
	write("notes.txt", 90*24*time.Hour)

	files, err := ListBackups(dir)
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(files))
	}
	if files[0].Name != "dayspark-backup-old.json" {
		t.Fatalf("expected oldest first, got %s", files[0].Name)
	}

	expired := DetectExpired(files, 30*24*time.Hour, now)
	if len(expired) != 1 || expired[0].Name != "dayspark-backup-old.json" {
		t.Fatalf("unexpected expired set %+v", expired)
	}
	if DetectExpired(files, 0, now) != nil {
		t.Fatalf("zero retention keeps everything")
	}
}

func TestListBackupsMissingDir(t *testing.T) {
	files, err := ListBackups(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no files, got %d", len(files))
	}
}
