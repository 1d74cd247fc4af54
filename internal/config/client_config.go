package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ClientConfig holds settings for the command line client
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// StatePath is the SQLite file backing local storage
	StatePath string
	// StateRedisURL, when set, replaces the SQLite file with Redis
	StateRedisURL string
	DemoFallback  bool
}

// LoadClient loads the client configuration from the .env file or environment variables
// Every value is optional and falls back to a default suited for local development
func LoadClient() (*ClientConfig, error) {
	// Try to load .env file (ignore error if file doesn't exist - it's optional)
	_ = godotenv.Load()

	cfg := &ClientConfig{
		BaseURL:      "http://localhost:8080/api",
		Timeout:      10 * time.Second,
		DemoFallback: true,
	}

	if baseURL := os.Getenv("API_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if timeoutStr := os.Getenv("API_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
		}
		cfg.Timeout = timeout
	}

	cfg.StatePath = os.Getenv("ASSETCTL_STATE_PATH")
	if cfg.StatePath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = os.TempDir()
		}
		cfg.StatePath = filepath.Join(dir, "assetmagnets", "state.db")
	}

	cfg.StateRedisURL = os.Getenv("ASSETCTL_REDIS_URL")

	if fallback := os.Getenv("ASSETCTL_DEMO_FALLBACK"); fallback != "" {
		enabled, err := strconv.ParseBool(fallback)
		if err != nil {
			return nil, fmt.Errorf("invalid ASSETCTL_DEMO_FALLBACK: %w", err)
		}
		cfg.DemoFallback = enabled
	}

	return cfg, nil
}
