package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/tobi-salau/resumescan/constants"
	"github.com/tobi-salau/resumescan/internal/common"
	"github.com/tobi-salau/resumescan/internal/enrich"
	"github.com/tobi-salau/resumescan/internal/entity"
	"github.com/tobi-salau/resumescan/internal/extract"
	"github.com/tobi-salau/resumescan/internal/repository"
	"github.com/tobi-salau/resumescan/internal/storage"
)

// Fixed display-safe diagnostics. Recorded on the scan row and returned to
// the caller in place of internal error detail.
const (
	msgEmptyUpload      = "uploaded file is empty"
	msgUploadTooLarge   = "uploaded file exceeds the maximum allowed size"
	msgUnsupportedType  = "unsupported document type"
	msgStoreFailed      = "failed to store the uploaded document"
	msgRecordFailed     = "failed to record the scan"
	msgExtractionFailed = "failed to extract text from document"
	msgEnrichmentFailed = "web search enrichment failed"
	msgFinalizeFailed   = "failed to save the scan outcome"
	defaultSummary      = "No summary available."
)

// UploadedFile is the inbound document as received from the caller.
type UploadedFile struct {
	Name        string
	Size        int64
	ContentType string
	Content     []byte
}

// Config bounds validation and storage of extracted artifacts.
type Config struct {
	MaxUploadBytes  int64
	StoredTextChars int
}

// Processor sequences one scan: object write, scan row insert, text
// extraction, enrichment, result insert, terminal update. Stages run
// strictly in order; no stage is retried and a failed run is not resumable.
type Processor struct {
	Logger  *slog.Logger
	Cfg     Config
	Store   storage.ObjectStore
	Scans   repository.ScanRepository
	Results repository.ScanResultRepository
	Text    extract.TextExtractor
	Search  enrich.Enricher
}

func NewProcessor(
	logger *slog.Logger,
	cfg Config,
	store storage.ObjectStore,
	scans repository.ScanRepository,
	results repository.ScanResultRepository,
	text extract.TextExtractor,
	search enrich.Enricher,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = constants.MaxUploadBytes
	}
	if cfg.StoredTextChars <= 0 {
		cfg.StoredTextChars = 2000
	}
	return &Processor{
		Logger:  logger,
		Cfg:     cfg,
		Store:   store,
		Scans:   scans,
		Results: results,
		Text:    text,
		Search:  search,
	}
}

// ScanDocument runs the full pipeline for one uploaded document.
//
// Side-effect ordering: nothing is written until validation passes; the
// object write precedes the scan row, and a scan insert failure deletes the
// just-written object so no orphaned blob survives. Once a scan row exists,
// extraction and enrichment failures become a recorded FAILED outcome, not
// a rollback: the object and row are retained.
func (p *Processor) ScanDocument(ctx context.Context, file UploadedFile) (*entity.ScanWithResults, error) {
	if err := p.validate(file); err != nil {
		return nil, err
	}

	storagePath := buildStoragePath(file.Name)
	if err := p.Store.Put(ctx, storagePath, file.Content, file.ContentType); err != nil {
		p.Logger.Error("scan.store.failed", "filename", file.Name, "path", storagePath, "error", err)
		return nil, newScanError(common.ErrStore, msgStoreFailed, err)
	}
	p.Logger.Info("scan.store.ok", "filename", file.Name, "path", storagePath, "bytes", len(file.Content))

	scan, err := p.Scans.Create(ctx, file.Name, storagePath, len(file.Content))
	if err != nil {
		// The object store and the record store share no commit protocol:
		// compensate by removing the just-written object. A delete failure
		// is logged but never masks the insert failure.
		p.Logger.Error("scan.record.failed", "filename", file.Name, "path", storagePath, "error", err)
		if delErr := p.Store.Delete(ctx, storagePath); delErr != nil {
			p.Logger.Error("scan.record.compensation_failed", "path", storagePath, "error", delErr)
		}
		return nil, newScanError(common.ErrPersistence, msgRecordFailed, err)
	}
	p.Logger.Info("scan.record.ok", "scan_id", scan.ID, "path", storagePath)

	extracted, err := p.Text.Extract(ctx, file.Content, file.ContentType)
	if err != nil {
		p.Logger.Error("scan.extract.failed", "scan_id", scan.ID, "error", err)
		p.markFailed(ctx, scan.ID, msgExtractionFailed)
		return nil, newScanError(common.ErrExtraction, msgExtractionFailed, err)
	}
	name := extract.DeriveSubjectName(extracted.Text)
	query := extract.BuildQuery(extracted.Text, name)
	p.Logger.Info("scan.extract.ok", "scan_id", scan.ID, "pages", extracted.Pages, "text_len", len(extracted.Text), "has_name", name != "")

	resp, err := p.Search.Search(ctx, query)
	if err != nil {
		p.Logger.Error("scan.enrich.failed", "scan_id", scan.ID, "error", err)
		p.markFailed(ctx, scan.ID, msgEnrichmentFailed)
		return nil, newScanError(common.ErrEnrichment, msgEnrichmentFailed, err)
	}
	p.Logger.Info("scan.enrich.ok", "scan_id", scan.ID, "results", len(resp.Results), "has_answer", resp.Answer != "")

	hits := make([]entity.NewScanResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		hits = append(hits, entity.NewScanResult{
			Title:   r.Title,
			URL:     r.URL,
			Content: r.Content,
			Score:   r.Score,
		})
	}
	// Individual row failures are logged inside the repository and do not
	// abort the run; the scan finalizes with whatever rows persisted.
	saved, err := p.Results.CreateBatch(ctx, scan.ID, hits)
	if err != nil {
		p.Logger.Warn("scan.results.partial", "scan_id", scan.ID, "saved", len(saved), "total", len(hits), "error", err)
	}

	summary := resp.Answer
	if summary == "" {
		summary = defaultSummary
	}
	var namePtr *string
	if name != "" {
		namePtr = &name
	}
	final, err := p.Scans.Finalize(ctx, scan.ID, repository.FinalizeFields{
		ExtractedName: namePtr,
		ExtractedText: extract.TruncateForStorage(extracted.Text, p.Cfg.StoredTextChars),
		SearchQuery:   query,
		Summary:       summary,
	})
	if err != nil {
		// The row stays in PROCESSING; surfaced, not swallowed.
		p.Logger.Error("scan.finalize.failed", "scan_id", scan.ID, "error", err)
		return nil, newScanError(common.ErrPersistence, msgFinalizeFailed, err)
	}

	p.Logger.Info("scan.completed", "scan_id", final.ID, "results", len(saved))
	return &entity.ScanWithResults{Scan: *final, Results: saved}, nil
}

// validate rejects bad input before any side effect.
func (p *Processor) validate(file UploadedFile) error {
	if len(file.Content) == 0 {
		return newScanError(common.ErrValidation, msgEmptyUpload, nil)
	}
	if file.Size > p.Cfg.MaxUploadBytes || int64(len(file.Content)) > p.Cfg.MaxUploadBytes {
		return newScanError(common.ErrValidation, msgUploadTooLarge, nil)
	}
	if !constants.ContentTypeAllowed(file.ContentType) {
		return newScanError(common.ErrValidation, msgUnsupportedType, nil)
	}
	return nil
}

// markFailed records the terminal FAILED outcome. A failure here is logged
// only: the caller already holds the stage error.
func (p *Processor) markFailed(ctx context.Context, id uuid.UUID, message string) {
	if _, err := p.Scans.MarkFailed(ctx, id, message); err != nil {
		p.Logger.Error("scan.mark_failed.failed", "scan_id", id, "error", err)
	}
}

// buildStoragePath allocates a collision-resistant object path. A generated
// token replaces timestamp-derived naming so coincident uploads of the same
// filename cannot collide.
func buildStoragePath(filename string) string {
	base := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, path.Base(filename))
	if base == "" || base == "." {
		base = "upload"
	}
	return fmt.Sprintf("scans/%s-%s", uuid.New(), base)
}
