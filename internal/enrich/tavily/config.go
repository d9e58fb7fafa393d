package tavily

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the Tavily search client.
type Config struct {
	APIKey      string        // if empty, falls back to env TAVILY_API_KEY
	BaseURL     string        // default https://api.tavily.com
	SearchDepth string        // "basic" or "advanced"
	MaxResults  int           // fixed result count per query
	Topic       string        // default "general"
	Timeout     time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("TAVILY_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.tavily.com"
	}
	if cfg.SearchDepth == "" {
		cfg.SearchDepth = "basic"
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 5
	}
	if cfg.Topic == "" {
		cfg.Topic = "general"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}
