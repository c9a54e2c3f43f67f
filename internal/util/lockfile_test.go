package util

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLockFileExcludesSecondHolder(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "data", ".lock")

	if err := CreateLockFile(lockPath, "task add"); err != nil {
		t.Fatalf("CreateLockFile() error = %v", err)
	}

	err := CreateLockFile(lockPath, "note add")
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}

	holder, err := ReadLockFile(lockPath)
	if err != nil {
		t.Fatalf("ReadLockFile() error = %v", err)
	}
	if holder.Pid != os.Getpid() || holder.Command != "task add" {
		t.Fatalf("unexpected holder %+v", holder)
	}

	if err := RemoveLockFile(lockPath); err != nil {
		t.Fatalf("RemoveLockFile() error = %v", err)
	}
	if err := CreateLockFile(lockPath, "note add"); err != nil {
		t.Fatalf("CreateLockFile() after release error = %v", err)
	}
}

func TestRemoveLockFileMissingIsNoop(t *testing.T) {
	if err := RemoveLockFile(filepath.Join(t.TempDir(), "missing.lock")); err != nil {
		t.Fatalf("RemoveLockFile() error = %v", err)
	}
}
