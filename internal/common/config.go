package common

import (
	"os"
	"strconv"
	"time"

	"github.com/tobi-salau/resumescan/constants"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	Scan     ScanConfig
	Search   SearchConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig holds object-store configuration
type StorageConfig struct {
	Backend   string // "gcs" or "local"
	GCSBucket string
	LocalDir  string
}

// ScanConfig holds upload validation and extraction bounds
type ScanConfig struct {
	MaxUploadBytes  int64
	StoredTextChars int
}

// SearchConfig holds enrichment provider configuration
type SearchConfig struct {
	APIKey      string
	BaseURL     string
	SearchDepth string
	MaxResults  int
	Timeout     time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Backend:   getEnv("STORAGE_BACKEND", "local"),
			GCSBucket: getEnv("GCS_BUCKET", ""),
			LocalDir:  getEnv("STORAGE_DIR", "./data/uploads"),
		},
		Scan: ScanConfig{
			MaxUploadBytes:  getEnvAsInt64("SCAN_MAX_UPLOAD_BYTES", constants.MaxUploadBytes),
			StoredTextChars: getEnvAsInt("SCAN_STORED_TEXT_CHARS", 2000),
		},
		Search: SearchConfig{
			APIKey:      getEnv("TAVILY_API_KEY", ""),
			BaseURL:     getEnv("TAVILY_BASE_URL", "https://api.tavily.com"),
			SearchDepth: getEnv("TAVILY_SEARCH_DEPTH", "basic"),
			MaxResults:  getEnvAsInt("TAVILY_MAX_RESULTS", 5),
			Timeout:     getEnvAsDuration("TAVILY_TIMEOUT", 30*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrValidation)
	}
	if c.Search.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "TAVILY_API_KEY is required", ErrValidation)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrValidation)
	}
	if c.Storage.Backend == "gcs" && c.Storage.GCSBucket == "" {
		return NewAppError("CONFIG_ERROR", "GCS_BUCKET is required when STORAGE_BACKEND=gcs", ErrValidation)
	}
	return nil
}
