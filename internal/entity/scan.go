package entity

import (
	"time"

	"github.com/google/uuid"
)

// Scan represents one document-ingestion attempt for data transfer between layers.
type Scan struct {
	ID            uuid.UUID `json:"id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"storage_path"`
	FileSize      int       `json:"file_size"`
	ExtractedName *string   `json:"extracted_name,omitempty"`
	ExtractedText *string   `json:"extracted_text,omitempty"`
	SearchQuery   *string   `json:"search_query,omitempty"`
	Summary       *string   `json:"summary,omitempty"`
	Status        string    `json:"status"`
	ErrorMessage  *string   `json:"error_message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ScanWithResults is a Scan plus its enrichment hits in provider order.
type ScanWithResults struct {
	Scan    Scan         `json:"scan"`
	Results []ScanResult `json:"results"`
}
