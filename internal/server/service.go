package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	scanspb "github.com/tobi-salau/resumescan/gen/proto/scans/v1"
	"github.com/tobi-salau/resumescan/internal/common"
	"github.com/tobi-salau/resumescan/internal/export"
	"github.com/tobi-salau/resumescan/internal/pipeline"
	"github.com/tobi-salau/resumescan/internal/repository"
	"github.com/tobi-salau/resumescan/internal/utils"
)

type ScanService struct {
	scanspb.UnimplementedScanServiceServer
	processor *pipeline.Processor
	scansRepo repository.ScanRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewScanService(proc *pipeline.Processor, scans repository.ScanRepository, exporter *export.Service, logger *slog.Logger) *ScanService {
	return &ScanService{
		processor: proc,
		scansRepo: scans,
		exporter:  exporter,
		logger:    logger,
	}
}

// ScanDocument implements scanspb.ScanServiceServer
func (s *ScanService) ScanDocument(ctx context.Context, req *scanspb.ScanDocumentRequest) (*scanspb.ScanDocumentResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		s.logger.Error("scan request missing filename")
		return nil, common.InvalidArgumentError("filename is required")
	}

	s.logger.Info("starting document scan", "filename", filename, "content_type", req.GetContentType(), "bytes", len(req.GetContent()))
	out, err := s.processor.ScanDocument(ctx, pipeline.UploadedFile{
		Name:        filename,
		Size:        int64(len(req.GetContent())),
		ContentType: req.GetContentType(),
		Content:     req.GetContent(),
	})
	if err != nil {
		// ScanError messages are already display-safe.
		if pipeline.IsValidation(err) {
			return nil, common.InvalidArgumentError(err.Error())
		}
		return nil, common.InternalError(err.Error())
	}
	s.logger.Info("document scan succeeded", "scan_id", out.Scan.ID, "results", len(out.Results))

	return &scanspb.ScanDocumentResponse{
		Scan:    utils.ToPBScan(&out.Scan),
		Results: utils.ToPBScanResults(out.Results),
	}, nil
}

// GetScan implements scanspb.ScanServiceServer
func (s *ScanService) GetScan(ctx context.Context, req *scanspb.GetScanRequest) (*scanspb.GetScanResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}

	out, err := s.scansRepo.GetWithResults(ctx, id)
	if err != nil {
		s.logger.Warn("get scan failed", "scan_id", id, "error", err)
		return nil, common.NotFoundError("scan not found")
	}
	return &scanspb.GetScanResponse{
		Scan:    utils.ToPBScan(&out.Scan),
		Results: utils.ToPBScanResults(out.Results),
	}, nil
}

// ListScans implements scanspb.ScanServiceServer
func (s *ScanService) ListScans(ctx context.Context, req *scanspb.ListScansRequest) (*scanspb.ListScansResponse, error) {
	scans, err := s.scansRepo.List(ctx, int(req.GetLimit()))
	if err != nil {
		s.logger.Warn("list scans failed", "error", err)
		return nil, common.InternalError("failed to list scans")
	}
	out := make([]*scanspb.Scan, 0, len(scans))
	for i := range scans {
		out = append(out, utils.ToPBScan(&scans[i]))
	}
	return &scanspb.ListScansResponse{Scans: out}, nil
}

// ExportScans implements scanspb.ScanServiceServer
func (s *ScanService) ExportScans(ctx context.Context, req *scanspb.ExportScansRequest) (*scanspb.ExportScansResponse, error) {
	data, err := s.exporter.ExportScansXLSX(ctx, int(req.GetLimit()))
	if err != nil {
		s.logger.Warn("export scans failed", "error", err)
		return nil, common.InternalError("failed to export scans")
	}
	return &scanspb.ExportScansResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("scans-%s.xlsx", time.Now().UTC().Format("20060102-150405")),
	}, nil
}
