package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tobi-salau/resumescan/gen/ent"
	entresult "github.com/tobi-salau/resumescan/gen/ent/scanresult"
	"github.com/tobi-salau/resumescan/internal/entity"
)

type ScanResultRepository interface {
	// CreateBatch inserts one row per hit, preserving provider order via
	// position. A row that fails to insert is logged and skipped; the rows
	// that did persist are returned.
	CreateBatch(ctx context.Context, scanID uuid.UUID, hits []entity.NewScanResult) ([]entity.ScanResult, error)
	ListByScan(ctx context.Context, scanID uuid.UUID) ([]entity.ScanResult, error)
}

type scanResultRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewScanResultRepository(entc *ent.Client, logger *slog.Logger) ScanResultRepository {
	return &scanResultRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *scanResultRepo) CreateBatch(ctx context.Context, scanID uuid.UUID, hits []entity.NewScanResult) ([]entity.ScanResult, error) {
	var firstErr error
	out := make([]entity.ScanResult, 0, len(hits))
	for i, hit := range hits {
		builder := r.ent.ScanResult.Create().
			SetScanID(scanID).
			SetTitle(hit.Title).
			SetURL(hit.URL).
			SetPosition(i)
		if hit.Content != "" {
			builder = builder.SetContent(hit.Content)
		}
		if hit.Score > 0 {
			builder = builder.SetScore(hit.Score)
		}
		row, err := builder.Save(ctx)
		if err != nil {
			r.logger.Error("failed to create scan result", "scan_id", scanID, "position", i, "url", hit.URL, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = append(out, *toScanResult(row))
	}
	return out, firstErr
}

func (r *scanResultRepo) ListByScan(ctx context.Context, scanID uuid.UUID) ([]entity.ScanResult, error) {
	rows, err := r.ent.ScanResult.Query().
		Where(entresult.ScanID(scanID)).
		Order(ent.Asc(entresult.FieldPosition)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list scan results", "scan_id", scanID, "error", err)
		return nil, err
	}
	out := make([]entity.ScanResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toScanResult(row))
	}
	return out, nil
}

func toScanResult(e *ent.ScanResult) *entity.ScanResult {
	return &entity.ScanResult{
		ID:        e.ID,
		ScanID:    e.ScanID,
		Title:     e.Title,
		URL:       e.URL,
		Content:   e.Content,
		Score:     e.Score,
		Position:  e.Position,
		CreatedAt: e.CreatedAt,
	}
}
