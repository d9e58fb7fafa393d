package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tobi-salau/resumescan/constants"
	"github.com/tobi-salau/resumescan/gen/ent"
	entscan "github.com/tobi-salau/resumescan/gen/ent/scan"
	entresult "github.com/tobi-salau/resumescan/gen/ent/scanresult"
	"github.com/tobi-salau/resumescan/internal/entity"
)

// FinalizeFields carries the artifacts written with the terminal COMPLETED update.
type FinalizeFields struct {
	ExtractedName *string
	ExtractedText string
	SearchQuery   string
	Summary       string
}

type ScanRepository interface {
	// Create inserts a scan row with status PROCESSING.
	Create(ctx context.Context, filename, storagePath string, fileSize int) (*entity.Scan, error)
	// Finalize performs the single terminal update to COMPLETED.
	Finalize(ctx context.Context, id uuid.UUID, fields FinalizeFields) (*entity.Scan, error)
	// MarkFailed performs the single terminal update to FAILED.
	MarkFailed(ctx context.Context, id uuid.UUID, message string) (*entity.Scan, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Scan, error)
	// GetWithResults loads a scan and its results in provider order.
	GetWithResults(ctx context.Context, id uuid.UUID) (*entity.ScanWithResults, error)
	List(ctx context.Context, limit int) ([]entity.Scan, error)
	// Delete removes a scan row (and, by cascade, its results).
	// Used only as part of compensation.
	Delete(ctx context.Context, id uuid.UUID) error
}

type scanRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewScanRepository(entc *ent.Client, logger *slog.Logger) ScanRepository {
	return &scanRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *scanRepo) Create(ctx context.Context, filename, storagePath string, fileSize int) (*entity.Scan, error) {
	row, err := r.ent.Scan.Create().
		SetFilename(filename).
		SetStoragePath(storagePath).
		SetFileSize(fileSize).
		SetStatus(string(constants.ScanStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create scan", "filename", filename, "storage_path", storagePath, "error", err)
		return nil, err
	}
	return toScan(row), nil
}

func (r *scanRepo) Finalize(ctx context.Context, id uuid.UUID, fields FinalizeFields) (*entity.Scan, error) {
	row, err := r.ent.Scan.UpdateOneID(id).
		SetStatus(string(constants.ScanStatusCompleted)).
		SetNillableExtractedName(fields.ExtractedName).
		SetExtractedText(fields.ExtractedText).
		SetSearchQuery(fields.SearchQuery).
		SetSummary(fields.Summary).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to finalize scan", "scan_id", id, "error", err)
		return nil, err
	}
	return toScan(row), nil
}

func (r *scanRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) (*entity.Scan, error) {
	row, err := r.ent.Scan.UpdateOneID(id).
		SetStatus(string(constants.ScanStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark scan failed", "scan_id", id, "error", err)
		return nil, err
	}
	return toScan(row), nil
}

func (r *scanRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Scan, error) {
	row, err := r.ent.Scan.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toScan(row), nil
}

func (r *scanRepo) GetWithResults(ctx context.Context, id uuid.UUID) (*entity.ScanWithResults, error) {
	row, err := r.ent.Scan.Query().
		Where(entscan.ID(id)).
		WithResults(func(q *ent.ScanResultQuery) {
			q.Order(ent.Asc(entresult.FieldPosition))
		}).
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to get scan with results", "scan_id", id, "error", err)
		return nil, err
	}
	out := &entity.ScanWithResults{Scan: *toScan(row)}
	for _, res := range row.Edges.Results {
		out.Results = append(out.Results, *toScanResult(res))
	}
	return out, nil
}

func (r *scanRepo) List(ctx context.Context, limit int) ([]entity.Scan, error) {
	q := r.ent.Scan.Query().Order(ent.Desc(entscan.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list scans", "error", err)
		return nil, err
	}
	out := make([]entity.Scan, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toScan(row))
	}
	return out, nil
}

func (r *scanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ent.Scan.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete scan", "scan_id", id, "error", err)
		return err
	}
	return nil
}

func toScan(e *ent.Scan) *entity.Scan {
	return &entity.Scan{
		ID:            e.ID,
		Filename:      e.Filename,
		StoragePath:   e.StoragePath,
		FileSize:      e.FileSize,
		ExtractedName: e.ExtractedName,
		ExtractedText: e.ExtractedText,
		SearchQuery:   e.SearchQuery,
		Summary:       e.Summary,
		Status:        e.Status,
		ErrorMessage:  e.ErrorMessage,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
