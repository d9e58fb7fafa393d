// Package storage holds the durable object store for uploaded documents.
// The scan row in the record store owns the stored object; an object with no
// matching scan row is an anomaly the pipeline compensates for.
package storage

import "context"

// ObjectStore stores uploaded bytes under a caller-supplied unique path.
type ObjectStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) error
	// Delete is best-effort compensation; callers must not let a Delete
	// failure mask the error it was compensating for.
	Delete(ctx context.Context, path string) error
}
