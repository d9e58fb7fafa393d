package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tobi-salau/resumescan/internal/repository"
)

// Service is a tiny façade over the scan repositories that produces XLSX
// bytes for the scan-history export.
type Service struct {
	scansRepo   repository.ScanRepository
	resultsRepo repository.ScanResultRepository
	logger      *slog.Logger
}

func NewService(scans repository.ScanRepository, results repository.ScanResultRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{scansRepo: scans, resultsRepo: results, logger: logger}
}

// ExportScansXLSX returns an XLSX workbook (as bytes) of scan history,
// newest first. limit <= 0 exports everything.
func (s *Service) ExportScansXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()

	scans, err := s.scansRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("query scans: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Scans"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Scanned At",
		"Filename",
		"Subject",
		"Status",
		"Search Query",
		"Summary",
		"Results",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, sc := range scans {
		results, err := s.resultsRepo.ListByScan(ctx, sc.ID)
		if err != nil {
			s.logger.Warn("failed to count scan results for export", "scan_id", sc.ID, "error", err)
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, sc.CreatedAt.UTC().Format(time.RFC3339))
		write(2, sc.Filename)
		write(3, strOrEmpty(sc.ExtractedName))
		write(4, sc.Status)
		write(5, strOrEmpty(sc.SearchQuery))
		write(6, truncate(strOrEmpty(sc.Summary), 140))
		write(7, len(results))
		write(8, strOrEmpty(sc.ErrorMessage))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 22) // timestamp
	_ = f.SetColWidth(sheet, "B", "B", 28) // filename
	_ = f.SetColWidth(sheet, "E", "F", 48) // query, summary

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("scan export built",
		"scans", len(scans),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
