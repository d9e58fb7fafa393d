package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FSStore persists uploaded documents under a local directory. Used for
// development and tests; the path keys mirror the GCS object names.
type FSStore struct {
	root   string
	logger *slog.Logger
}

func NewFSStore(root string, logger *slog.Logger) (*FSStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root %s: %w", root, err)
	}
	return &FSStore{root: root, logger: logger}, nil
}

func (s *FSStore) Put(_ context.Context, path string, data []byte, _ string) error {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		s.logger.Error("failed to create object directory", "path", path, "error", err)
		return fmt.Errorf("create object dir %s: %w", path, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		s.logger.Error("failed to write object", "path", path, "error", err)
		return fmt.Errorf("write object %s: %w", path, err)
	}
	return nil
}

func (s *FSStore) Delete(_ context.Context, path string) error {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.Remove(full); err != nil {
		s.logger.Error("failed to delete object", "path", path, "error", err)
		return fmt.Errorf("delete object %s: %w", path, err)
	}
	return nil
}

// Exists reports whether an object is present at path.
func (s *FSStore) Exists(path string) bool {
	st, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(path)))
	return err == nil && !st.IsDir()
}
