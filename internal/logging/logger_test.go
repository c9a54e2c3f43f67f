package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nakachan-ing/dayspark/internal/model"
)

func TestNewWritesToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "dayspark.log")
	logger, err := New(model.LogConfig{File: logFile, Level: "debug"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("hello_log")
	_ = logger.Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello_log") {
		t.Fatalf("expected log line in file, got %q", string(data))
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(model.LogConfig{Level: "loud"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
