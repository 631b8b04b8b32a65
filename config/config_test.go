package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("PRICESCOUT_SERVER_PORT")
		os.Unsetenv("PRICESCOUT_SERVER_ENVIRONMENT")
		os.Unsetenv("PRICESCOUT_GOOGLE_API_KEY")
		os.Unsetenv("PRICESCOUT_GOOGLE_CSE_ID")
		os.Unsetenv("PRICESCOUT_GOOGLE_BASE_URL")
		os.Unsetenv("PRICESCOUT_CACHE_TTL")
		os.Unsetenv("PRICESCOUT_RATELIMIT_PER_IP")
		os.Unsetenv("PRICESCOUT_RATELIMIT_GOOGLE")
		os.Unsetenv("PRICESCOUT_SCRAPER_TIMEOUT")
		os.Unsetenv("PRICESCOUT_SCRAPER_MAX_RETRIES")
		os.Unsetenv("PRICESCOUT_BATCH_CONCURRENCY")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required credentials
		os.Setenv("PRICESCOUT_GOOGLE_API_KEY", "test-key")
		os.Setenv("PRICESCOUT_GOOGLE_CSE_ID", "test-cse")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8000" {
			t.Errorf("Server.Port = %s, want 8000", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Google.BaseURL != "https://www.googleapis.com/customsearch/v1" {
			t.Errorf("Google.BaseURL = %s, want https://www.googleapis.com/customsearch/v1", cfg.Google.BaseURL)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 10 {
			t.Errorf("RateLimit.PerIP = %v, want 10", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Google != 5 {
			t.Errorf("RateLimit.Google = %v, want 5", cfg.RateLimit.Google)
		}
		if cfg.Scraper.Timeout != 15*time.Second {
			t.Errorf("Scraper.Timeout = %v, want 15s", cfg.Scraper.Timeout)
		}
		if cfg.Scraper.MaxRetries != 2 {
			t.Errorf("Scraper.MaxRetries = %d, want 2", cfg.Scraper.MaxRetries)
		}
		if cfg.Batch.Concurrency != 5 {
			t.Errorf("Batch.Concurrency = %d, want 5", cfg.Batch.Concurrency)
		}
		if !cfg.Batch.ExtractPrices {
			t.Errorf("Batch.ExtractPrices = false, want true")
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICESCOUT_GOOGLE_API_KEY", "custom-key")
		os.Setenv("PRICESCOUT_GOOGLE_CSE_ID", "custom-cse")
		os.Setenv("PRICESCOUT_SERVER_PORT", "9090")
		os.Setenv("PRICESCOUT_SERVER_ENVIRONMENT", "production")
		os.Setenv("PRICESCOUT_CACHE_TTL", "1h")
		os.Setenv("PRICESCOUT_BATCH_CONCURRENCY", "10")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Google.APIKey != "custom-key" {
			t.Errorf("Google.APIKey = %s, want custom-key", cfg.Google.APIKey)
		}
		if cfg.Google.CSEID != "custom-cse" {
			t.Errorf("Google.CSEID = %s, want custom-cse", cfg.Google.CSEID)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.Batch.Concurrency != 10 {
			t.Errorf("Batch.Concurrency = %d, want 10", cfg.Batch.Concurrency)
		}
	})

	t.Run("binds nested keys to underscored env names", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICESCOUT_GOOGLE_API_KEY", "env-key")
		os.Setenv("PRICESCOUT_GOOGLE_CSE_ID", "env-cse")
		os.Setenv("PRICESCOUT_RATELIMIT_PER_IP", "25")
		os.Setenv("PRICESCOUT_SCRAPER_MAX_RETRIES", "4")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// google.api_key must resolve from PRICESCOUT_GOOGLE_API_KEY,
		// not PRICESCOUT_GOOGLE.API_KEY
		if cfg.Google.APIKey != "env-key" {
			t.Errorf("Google.APIKey = %s, want env-key", cfg.Google.APIKey)
		}
		if cfg.RateLimit.PerIP != 25 {
			t.Errorf("RateLimit.PerIP = %v, want 25", cfg.RateLimit.PerIP)
		}
		if cfg.Scraper.MaxRetries != 4 {
			t.Errorf("Scraper.MaxRetries = %d, want 4", cfg.Scraper.MaxRetries)
		}
	})

	t.Run("fails when Google API key is missing", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICESCOUT_GOOGLE_CSE_ID", "test-cse")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for missing API key")
		}
	})

	t.Run("fails when Google CSE ID is missing", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICESCOUT_GOOGLE_API_KEY", "test-key")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for missing CSE ID")
		}
	})

	t.Run("fails when batch concurrency is zero", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICESCOUT_GOOGLE_API_KEY", "test-key")
		os.Setenv("PRICESCOUT_GOOGLE_CSE_ID", "test-cse")
		os.Setenv("PRICESCOUT_BATCH_CONCURRENCY", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for zero concurrency")
		}
	})
}
