package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tobi-salau/resumescan/internal/enrich"
)

// Search implements enrich.Enricher with a single POST to the Tavily
// search endpoint. The provider's result ordering is preserved as-is.
// One terminal failure per call: no retry, no backoff.
func (c *Client) Search(ctx context.Context, query string) (enrich.SearchResponse, error) {
	if c.cfg.APIKey == "" {
		return enrich.SearchResponse{}, fmt.Errorf("tavily api key is not configured")
	}

	start := time.Now()
	c.logger.Info("tavily.search.start",
		"query_len", len(query),
		"search_depth", c.cfg.SearchDepth,
		"max_results", c.cfg.MaxResults,
	)

	body := map[string]any{
		"query":          query,
		"search_depth":   c.cfg.SearchDepth,
		"max_results":    c.cfg.MaxResults,
		"include_answer": true,
		"topic":          c.cfg.Topic,
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/search"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("tavily.search.http_error",
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return enrich.SearchResponse{}, err
	}

	if err := enrich.ValidateJSONAgainstSchema(enrich.SearchResponseSchema(), raw); err != nil {
		c.logger.Error("tavily.search.schema_validation_failed",
			"error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return enrich.SearchResponse{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var payload struct {
		Answer  *string `json:"answer"`
		Results []struct {
			Title   string  `json:"title"`
			URL     string  `json:"url"`
			Content string  `json:"content"`
			Score   float32 `json:"score"`
		} `json:"results"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.logger.Error("tavily.search.decode_error",
			"error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return enrich.SearchResponse{}, fmt.Errorf("decode tavily response: %w", err)
	}

	out := enrich.SearchResponse{}
	if payload.Answer != nil {
		out.Answer = *payload.Answer
	}
	for _, r := range payload.Results {
		out.Results = append(out.Results, enrich.SearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Content: r.Content,
			Score:   r.Score,
		})
	}

	c.logger.Info("tavily.search.ok",
		"results", len(out.Results),
		"has_answer", out.Answer != "",
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.Warn("tavily response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("tavily status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}
