package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nakachan-ing/dayspark/internal/model"
	"gopkg.in/yaml.v3"
)

var ErrLocked = errors.New("data directory is locked by another process")

// CreateLockFile creates lockFileName exclusively. When the file already
// exists the returned error wraps ErrLocked and names the holder.
func CreateLockFile(lockFileName, command string) error {
	t := time.Now()
	id := fmt.Sprintf("%d%02d%02d%02d%02d%02d",
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second())

	user := os.Getenv("USER")
	if user == "" {
		user = os.Getenv("USERNAME")
	}
	if user == "" {
		user = "unknown"
	}

	lockFile := model.LockFile{
		ID:        id,
		User:      user,
		Pid:       os.Getpid(),
		Command:   command,
		TimeStamp: t.Format(time.RFC3339),
	}

	info, err := yaml.Marshal(&lockFile)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(lockFileName), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	f, err := os.OpenFile(lockFileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			holder, readErr := ReadLockFile(lockFileName)
			if readErr != nil {
				return fmt.Errorf("%w (%s)", ErrLocked, lockFileName)
			}
			return fmt.Errorf("%w: pid %d (%s) since %s", ErrLocked, holder.Pid, holder.Command, holder.TimeStamp)
		}
		return fmt.Errorf("failed to create lock file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(info); err != nil {
		_ = os.Remove(lockFileName)
		return fmt.Errorf("failed to write lock file: %w", err)
	}

	return nil
}

func ReadLockFile(lockFileName string) (model.LockFile, error) {
	var lockFile model.LockFile
	data, err := os.ReadFile(lockFileName)
	if err != nil {
		return lockFile, err
	}
	if err := yaml.Unmarshal(data, &lockFile); err != nil {
		return lockFile, fmt.Errorf("failed to parse lock file: %w", err)
	}
	return lockFile, nil
}

func RemoveLockFile(lockFileName string) error {
	if err := os.Remove(lockFileName); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}
