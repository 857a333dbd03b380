package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// EnsureDir ensures a directory exists
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// SaveMarkdown writes a rendered markdown document into dir under a
// timestamped filename and returns the full path
func SaveMarkdown(dir, prefix, content string) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.md", prefix, timestamp))

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write markdown file: %w", err)
	}
	return path, nil
}
