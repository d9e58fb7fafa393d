package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStorePutAndDelete(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)

	ctx := context.Background()
	path := "scans/abc-report.pdf"

	require.NoError(t, store.Put(ctx, path, []byte("%PDF-1.4 payload"), "application/pdf"))
	assert.True(t, store.Exists(path))

	require.NoError(t, store.Delete(ctx, path))
	assert.False(t, store.Exists(path))
}

func TestFSStoreDeleteMissing(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)

	assert.Error(t, store.Delete(context.Background(), "scans/never-written.pdf"))
}
