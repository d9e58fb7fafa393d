package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"cloud.google.com/go/storage"
)

// GCSStore persists uploaded documents in a Google Cloud Storage bucket.
type GCSStore struct {
	bucket *storage.BucketHandle
	logger *slog.Logger
}

func NewGCSStore(client *storage.Client, bucket string, logger *slog.Logger) *GCSStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &GCSStore{bucket: client.Bucket(bucket), logger: logger}
}

func (s *GCSStore) Put(ctx context.Context, path string, data []byte, contentType string) error {
	w := s.bucket.Object(path).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		s.logger.Error("failed to write object", "path", path, "error", err)
		return fmt.Errorf("write object %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		s.logger.Error("failed to finalize object write", "path", path, "error", err)
		return fmt.Errorf("finalize object %s: %w", path, err)
	}
	return nil
}

func (s *GCSStore) Delete(ctx context.Context, path string) error {
	if err := s.bucket.Object(path).Delete(ctx); err != nil {
		s.logger.Error("failed to delete object", "path", path, "error", err)
		return fmt.Errorf("delete object %s: %w", path, err)
	}
	return nil
}
