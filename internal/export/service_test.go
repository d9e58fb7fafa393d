package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tobi-salau/resumescan/constants"
	"github.com/tobi-salau/resumescan/internal/entity"
	"github.com/tobi-salau/resumescan/internal/repository"
)

type fakeScanRepo struct {
	scans []entity.Scan
}

func (f *fakeScanRepo) Create(context.Context, string, string, int) (*entity.Scan, error) {
	panic("not used")
}
func (f *fakeScanRepo) Finalize(context.Context, uuid.UUID, repository.FinalizeFields) (*entity.Scan, error) {
	panic("not used")
}
func (f *fakeScanRepo) MarkFailed(context.Context, uuid.UUID, string) (*entity.Scan, error) {
	panic("not used")
}
func (f *fakeScanRepo) GetByID(context.Context, uuid.UUID) (*entity.Scan, error) {
	panic("not used")
}
func (f *fakeScanRepo) GetWithResults(context.Context, uuid.UUID) (*entity.ScanWithResults, error) {
	panic("not used")
}
func (f *fakeScanRepo) Delete(context.Context, uuid.UUID) error { panic("not used") }

func (f *fakeScanRepo) List(_ context.Context, limit int) ([]entity.Scan, error) {
	if limit > 0 && limit < len(f.scans) {
		return f.scans[:limit], nil
	}
	return f.scans, nil
}

type fakeResultRepo struct {
	byScan map[uuid.UUID][]entity.ScanResult
}

func (f *fakeResultRepo) CreateBatch(context.Context, uuid.UUID, []entity.NewScanResult) ([]entity.ScanResult, error) {
	panic("not used")
}

func (f *fakeResultRepo) ListByScan(_ context.Context, scanID uuid.UUID) ([]entity.ScanResult, error) {
	return f.byScan[scanID], nil
}

func ptr(s string) *string { return &s }

func TestExportScansXLSX(t *testing.T) {
	completedID := uuid.New()
	failedID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	scans := &fakeScanRepo{scans: []entity.Scan{
		{
			ID:            completedID,
			Filename:      "resume.pdf",
			Status:        string(constants.ScanStatusCompleted),
			ExtractedName: ptr("Jordan Lee"),
			SearchQuery:   ptr("Jordan Lee professional background work experience"),
			Summary:       ptr("An engineer."),
			CreatedAt:     now,
		},
		{
			ID:           failedID,
			Filename:     "broken.pdf",
			Status:       string(constants.ScanStatusFailed),
			ErrorMessage: ptr("failed to extract text from document"),
			CreatedAt:    now.Add(-time.Hour),
		},
	}}
	results := &fakeResultRepo{byScan: map[uuid.UUID][]entity.ScanResult{
		completedID: {
			{Title: "Hit one", URL: "https://example.com/1", Position: 0},
			{Title: "Hit two", URL: "https://example.com/2", Position: 1},
		},
	}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(scans, results, logger)

	data, err := svc.ExportScansXLSX(context.Background(), 0)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	const sheet = "Scans"
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Scanned At", header)

	filename, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", filename)

	subject, err := f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "Jordan Lee", subject)

	count, err := f.GetCellValue(sheet, "G2")
	require.NoError(t, err)
	assert.Equal(t, "2", count)

	errMsg, err := f.GetCellValue(sheet, "H3")
	require.NoError(t, err)
	assert.Equal(t, "failed to extract text from document", errMsg)
}

func TestExportScansXLSXEmpty(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(&fakeScanRepo{}, &fakeResultRepo{}, logger)

	data, err := svc.ExportScansXLSX(context.Background(), 0)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
