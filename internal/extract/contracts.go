package extract

import "context"

// TextExtractor turns uploaded document bytes into plain text.
// No partial text is returned on failure.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, contentType string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // "PDF" | "TXT"
}
