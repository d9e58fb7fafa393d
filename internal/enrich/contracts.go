package enrich

import "context"

// Enricher augments a derived query with externally sourced results.
// One call per scan; no retry, no caching.
type Enricher interface {
	Search(ctx context.Context, query string) (SearchResponse, error)
}

// SearchResponse holds the provider's answer and hits in provider order.
// The pipeline never re-ranks.
type SearchResponse struct {
	Answer  string
	Results []SearchResult
}

type SearchResult struct {
	Title   string
	URL     string
	Content string
	Score   float32
}
