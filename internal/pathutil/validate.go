// Package pathutil provides path validation utilities for the files a run writes.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RedactPath reduces a full path to .../<parent>/<basename> for safe error messages.
// For example, "/home/user/results/montyHall.csv" becomes ".../results/montyHall.csv".
func RedactPath(path string) string {
	if path == "" {
		return ""
	}
	cleaned := filepath.Clean(path)
	dir := filepath.Dir(cleaned)
	base := filepath.Base(cleaned)
	parent := filepath.Base(dir)
	if parent == "." || parent == string(filepath.Separator) {
		return base
	}
	return ".../" + parent + "/" + base
}

// ValidateOutputPath checks that path names a file that can be created or
// truncated: it must be non-empty, free of null bytes, not an existing
// directory, and its parent directory must already exist.
func ValidateOutputPath(path string) error {
	if path == "" {
		return fmt.Errorf("output path validation failed: path is empty")
	}

	// Check for null bytes (common injection vector)
	if strings.ContainsRune(path, '\x00') {
		return fmt.Errorf("output path validation failed: path contains null byte")
	}

	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("output path validation failed: cannot resolve absolute path: %w", err)
	}

	if info, err := os.Stat(absPath); err == nil && info.IsDir() {
		return fmt.Errorf("output path validation failed: %q is a directory", RedactPath(absPath))
	}

	parent := filepath.Dir(absPath)
	info, err := os.Stat(parent)
	if err != nil {
		return fmt.Errorf("output path validation failed: parent directory %q: %w", RedactPath(parent), err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path validation failed: parent %q is not a directory", RedactPath(parent))
	}

	return nil
}
