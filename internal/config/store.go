package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// maxYAMLFileSize is the maximum size of a persisted config file (1 MB).
// Prevents memory exhaustion from a corrupted or accidentally oversized
// file; a real devkit config is well under 1 KB.
const maxYAMLFileSize = 1 << 20 // 1 MB

// YAMLStore provides generic YAML file I/O operations for persisted state
// (user preferences, tool settings).
type YAMLStore[T any] struct {
	path         string
	allowMissing bool // If true, missing file returns zero value instead of error
}

// NewYAMLStore creates a new YAML store for type T at the given path.
func NewYAMLStore[T any](path string, allowMissing bool) *YAMLStore[T] {
	return &YAMLStore[T]{path: path, allowMissing: allowMissing}
}

// Path returns the full file path
func (s *YAMLStore[T]) Path() string {
	return s.path
}

// Load reads and unmarshals the YAML file into type T.
// Rejects files larger than maxYAMLFileSize.
func (s *YAMLStore[T]) Load() (T, error) {
	var result T

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && s.allowMissing {
			return result, nil
		}
		return result, err
	}
	if info.Size() > maxYAMLFileSize {
		return result, fmt.Errorf("%s exceeds maximum size (%d bytes > %d byte limit)", filepath.Base(s.path), info.Size(), maxYAMLFileSize)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && s.allowMissing {
			return result, nil
		}
		return result, err
	}

	if err := yaml.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("invalid %s: %w", filepath.Base(s.path), err)
	}

	return result, nil
}

// Save marshals and writes type T to the YAML file, creating parent
// directories as needed.
func (s *YAMLStore[T]) Save(data T) error {
	bytes, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(s.path), err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, bytes, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(s.path), err)
	}

	return nil
}

// Delete removes the persisted file. Missing file is not an error; the
// store can always be reset by deleting it.
func (s *YAMLStore[T]) Delete() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
