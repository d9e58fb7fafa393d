package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"
)

// DocumentExtractor dispatches on content type. PDF goes through the
// pdfcpu content-stream parser; plain text is passed through after a
// UTF-8 sanity check.
type DocumentExtractor struct {
	logger *slog.Logger
}

func NewDocumentExtractor(logger *slog.Logger) *DocumentExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentExtractor{logger: logger}
}

func (e *DocumentExtractor) Extract(_ context.Context, data []byte, contentType string) (TextExtractionResult, error) {
	start := time.Now()
	base := contentType
	if i := strings.IndexByte(base, ';'); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimSpace(strings.ToLower(base))

	var res TextExtractionResult
	var err error
	switch base {
	case "application/pdf":
		res, err = extractPDF(data)
	case "text/plain":
		res, err = extractPlainText(data)
	default:
		return TextExtractionResult{}, fmt.Errorf("unsupported content type: %s", contentType)
	}
	if err != nil {
		e.logger.Error("extract.failed", "content_type", base, "bytes", len(data), "error", err)
		return TextExtractionResult{}, err
	}
	e.logger.Info("extract.ok",
		"content_type", base,
		"bytes", len(data),
		"pages", res.Pages,
		"text_len", len(res.Text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func extractPlainText(data []byte) (TextExtractionResult, error) {
	if !utf8.Valid(data) {
		return TextExtractionResult{}, fmt.Errorf("text document is not valid UTF-8")
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return TextExtractionResult{}, fmt.Errorf("no text content found in document")
	}
	return TextExtractionResult{Text: text, Pages: 1, SourceType: "TXT"}, nil
}
