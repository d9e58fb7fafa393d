package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScanResult represents one enrichment hit attached to a scan.
type ScanResult struct {
	ID        uuid.UUID `json:"id"`
	ScanID    uuid.UUID `json:"scan_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Content   *string   `json:"content,omitempty"`
	Score     *float32  `json:"score,omitempty"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// NewScanResult carries one provider hit into the result repository.
type NewScanResult struct {
	Title   string
	URL     string
	Content string
	Score   float32
}
