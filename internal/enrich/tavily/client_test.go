package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{
			"answer": "Jordan Lee is a software engineer.",
			"results": [
				{"title": "Jordan Lee - LinkedIn", "url": "https://example.com/a", "content": "profile", "score": 0.91},
				{"title": "Jordan Lee - GitHub", "url": "https://example.com/b", "content": "repos", "score": 0.84}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	resp, err := c.Search(context.Background(), "Jordan Lee professional background work experience")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "Jordan Lee professional background work experience", gotBody["query"])
	assert.Equal(t, "basic", gotBody["search_depth"])
	assert.Equal(t, float64(5), gotBody["max_results"])
	assert.Equal(t, true, gotBody["include_answer"])
	assert.Equal(t, "general", gotBody["topic"])

	assert.Equal(t, "Jordan Lee is a software engineer.", resp.Answer)
	require.Len(t, resp.Results, 2)
	// provider ordering preserved
	assert.Equal(t, "https://example.com/a", resp.Results[0].URL)
	assert.Equal(t, "https://example.com/b", resp.Results[1].URL)
	assert.InDelta(t, 0.91, resp.Results[0].Score, 1e-6)
}

func TestSearchNullAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"answer": null, "results": []}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	resp, err := c.Search(context.Background(), "query")
	require.NoError(t, err)
	assert.Empty(t, resp.Answer)
	assert.Empty(t, resp.Results)
}

func TestSearchProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	_, err := c.Search(context.Background(), "query")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestSearchMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": [{"title": "no url"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	_, err := c.Search(context.Background(), "query")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestSearchMissingCredential(t *testing.T) {
	t.Setenv("TAVILY_API_KEY", "")
	c := NewClient(Config{BaseURL: "http://127.0.0.1:0"}, nil)
	_, err := c.Search(context.Background(), "query")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}
