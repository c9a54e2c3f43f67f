package util

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/nakachan-ing/dayspark/internal/model"
)

func OpenEditor(filePath string, config model.Config) error {
	c := exec.Command(config.Editor, filePath)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("failed to open editor (%s): %w", filePath, err)
	}
	return nil
}

// ComposeInEditor opens the configured editor on a temporary file and returns
// what was written, trimmed.
func ComposeInEditor(config model.Config) (string, error) {
	f, err := os.CreateTemp("", "dayspark-*.md")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := OpenEditor(path, config); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read temp file: %w", err)
	}
	return strings.TrimSpace(string(content)), nil
}
