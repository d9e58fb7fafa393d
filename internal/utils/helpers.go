package utils

import (
	"time"

	scanspb "github.com/tobi-salau/resumescan/gen/proto/scans/v1"
	"github.com/tobi-salau/resumescan/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToPBScan(s *entity.Scan) *scanspb.Scan {
	return &scanspb.Scan{
		Id:            s.ID.String(),
		Filename:      s.Filename,
		StoragePath:   s.StoragePath,
		FileSize:      int64(s.FileSize),
		ExtractedName: strOrEmpty(s.ExtractedName),
		ExtractedText: strOrEmpty(s.ExtractedText),
		SearchQuery:   strOrEmpty(s.SearchQuery),
		Summary:       strOrEmpty(s.Summary),
		Status:        s.Status,
		ErrorMessage:  strOrEmpty(s.ErrorMessage),
		CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBScanResult(r *entity.ScanResult) *scanspb.ScanResult {
	var score float32
	if r.Score != nil {
		score = *r.Score
	}
	return &scanspb.ScanResult{
		Id:        r.ID.String(),
		ScanId:    r.ScanID.String(),
		Title:     r.Title,
		Url:       r.URL,
		Content:   strOrEmpty(r.Content),
		Score:     score,
		Position:  int32(r.Position),
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBScanResults(rs []entity.ScanResult) []*scanspb.ScanResult {
	out := make([]*scanspb.ScanResult, 0, len(rs))
	for i := range rs {
		out = append(out, ToPBScanResult(&rs[i]))
	}
	return out
}
