package repository

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobi-salau/resumescan/constants"
	"github.com/tobi-salau/resumescan/gen/ent/enttest"
	"github.com/tobi-salau/resumescan/internal/entity"
)

func newTestRepos(t *testing.T) (ScanRepository, ScanResultRepository) {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "scans.db")
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { _ = client.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewScanRepository(client, logger), NewScanResultRepository(client, logger)
}

func TestScanRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	scans, _ := newTestRepos(t)

	created, err := scans.Create(ctx, "resume.pdf", "scans/abc-resume.pdf", 2048)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ScanStatusProcessing), created.Status)
	assert.Equal(t, "resume.pdf", created.Filename)
	assert.Nil(t, created.ExtractedText)
	assert.Nil(t, created.ErrorMessage)

	name := "Jordan Lee"
	done, err := scans.Finalize(ctx, created.ID, FinalizeFields{
		ExtractedName: &name,
		ExtractedText: "Jordan Lee\nSoftware Engineer",
		SearchQuery:   "Jordan Lee professional background work experience",
		Summary:       "An engineer.",
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.ScanStatusCompleted), done.Status)
	require.NotNil(t, done.ExtractedName)
	assert.Equal(t, "Jordan Lee", *done.ExtractedName)
	require.NotNil(t, done.Summary)
	assert.Equal(t, "An engineer.", *done.Summary)

	got, err := scans.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ScanStatusCompleted), got.Status)
}

func TestScanRepositoryMarkFailed(t *testing.T) {
	ctx := context.Background()
	scans, _ := newTestRepos(t)

	created, err := scans.Create(ctx, "resume.pdf", "scans/def-resume.pdf", 100)
	require.NoError(t, err)

	failed, err := scans.MarkFailed(ctx, created.ID, "failed to extract text from document")
	require.NoError(t, err)
	assert.Equal(t, string(constants.ScanStatusFailed), failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "failed to extract text from document", *failed.ErrorMessage)
	assert.Nil(t, failed.ExtractedText)
}

func TestScanRepositoryUniqueStoragePath(t *testing.T) {
	ctx := context.Background()
	scans, _ := newTestRepos(t)

	_, err := scans.Create(ctx, "a.pdf", "scans/same-path.pdf", 1)
	require.NoError(t, err)
	_, err = scans.Create(ctx, "b.pdf", "scans/same-path.pdf", 1)
	assert.Error(t, err)
}

func TestScanResultBatchOrderAndCascade(t *testing.T) {
	ctx := context.Background()
	scans, results := newTestRepos(t)

	scan, err := scans.Create(ctx, "resume.pdf", "scans/ghi-resume.pdf", 512)
	require.NoError(t, err)

	persisted, err := results.CreateBatch(ctx, scan.ID, []entity.NewScanResult{
		{Title: "First hit", URL: "https://example.com/1", Content: "snippet one", Score: 0.9},
		{Title: "Second hit", URL: "https://example.com/2"},
		{Title: "Third hit", URL: "https://example.com/3", Content: "snippet three", Score: 0.2},
	})
	require.NoError(t, err)
	require.Len(t, persisted, 3)
	for i, r := range persisted {
		assert.Equal(t, i, r.Position)
		assert.Equal(t, scan.ID, r.ScanID)
	}
	assert.Nil(t, persisted[1].Content)
	assert.Nil(t, persisted[1].Score)
	require.NotNil(t, persisted[0].Score)
	assert.InDelta(t, 0.9, float64(*persisted[0].Score), 0.0001)

	with, err := scans.GetWithResults(ctx, scan.ID)
	require.NoError(t, err)
	require.Len(t, with.Results, 3)
	assert.Equal(t, "First hit", with.Results[0].Title)
	assert.Equal(t, "Third hit", with.Results[2].Title)

	require.NoError(t, scans.Delete(ctx, scan.ID))
	_, err = scans.GetByID(ctx, scan.ID)
	assert.Error(t, err)

	orphans, err := results.ListByScan(ctx, scan.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}

func TestScanRepositoryList(t *testing.T) {
	ctx := context.Background()
	scans, _ := newTestRepos(t)

	for _, p := range []string{"scans/1-a.pdf", "scans/2-b.pdf", "scans/3-c.pdf"} {
		_, err := scans.Create(ctx, filepath.Base(p), p, 10)
		require.NoError(t, err)
	}

	all, err := scans.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	limited, err := scans.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
