package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Google    GoogleConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Scraper   ScraperConfig
	Batch     BatchConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GoogleConfig holds Google Custom Search API configuration
type GoogleConfig struct {
	APIKey  string `mapstructure:"api_key"`
	CSEID   string `mapstructure:"cse_id"`
	BaseURL string `mapstructure:"base_url"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration.
// PerIP caps requests per second per client IP; Google caps outbound
// Custom Search API calls per second.
type RateLimitConfig struct {
	PerIP  float64 `mapstructure:"per_ip"`
	Google float64 `mapstructure:"google"`
}

// ScraperConfig holds price-extraction configuration
type ScraperConfig struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
	UserAgent  string        `mapstructure:"user_agent"`
}

// BatchConfig holds spreadsheet batch-processing configuration
type BatchConfig struct {
	Concurrency   int  `mapstructure:"concurrency"`
	ExtractPrices bool `mapstructure:"extract_prices"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pricescout/")

	// Environment variable settings. Nested keys map to underscored
	// env names, e.g. google.api_key -> PRICESCOUT_GOOGLE_API_KEY.
	v.SetEnvPrefix("PRICESCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Google defaults
	v.SetDefault("google.base_url", "https://www.googleapis.com/customsearch/v1")

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 10)
	v.SetDefault("ratelimit.google", 5)

	// Scraper defaults
	v.SetDefault("scraper.timeout", "15s")
	v.SetDefault("scraper.max_retries", 2)
	v.SetDefault("scraper.user_agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	// Batch defaults
	v.SetDefault("batch.concurrency", 5)
	v.SetDefault("batch.extract_prices", true)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Google.APIKey == "" {
		return fmt.Errorf("Google API key is required (set PRICESCOUT_GOOGLE_API_KEY)")
	}

	if config.Google.CSEID == "" {
		return fmt.Errorf("Google CSE ID is required (set PRICESCOUT_GOOGLE_CSE_ID)")
	}

	if config.Batch.Concurrency < 1 {
		return fmt.Errorf("batch concurrency must be at least 1, got: %d", config.Batch.Concurrency)
	}

	if config.Scraper.MaxRetries < 0 {
		return fmt.Errorf("scraper max_retries must be non-negative, got: %d", config.Scraper.MaxRetries)
	}

	return nil
}
