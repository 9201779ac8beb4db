// Package fileutil holds small filesystem helpers shared by the adapters
// and the CLI.
package fileutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDirectory creates a directory (and parents) if it does not exist
func EnsureDirectory(dir string) error {
	if dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// SaveToTempFile writes content to a fresh temporary file and returns its
// path. The caller is responsible for removing the file.
func SaveToTempFile(content string, suffix string) (string, error) {
	f, err := os.CreateTemp("", "codeinsight-*"+suffix)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return f.Name(), nil
}

// LoadJSONFile reads and decodes a JSON file into v
func LoadJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load JSON file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse JSON file %s: %w", path, err)
	}

	return nil
}

// SaveJSONFile encodes v as indented JSON and writes it to path, creating
// parent directories as needed.
func SaveJSONFile(path string, v any) error {
	if err := EnsureDirectory(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON for %s: %w", path, err)
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Extension returns the lower-cased file extension of a path
func Extension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// IsPythonFile reports whether a path looks like a Python source file
func IsPythonFile(path string) bool {
	return Extension(path) == ".py"
}
