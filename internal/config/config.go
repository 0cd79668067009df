package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port            int
	DevMode         bool
	LogLevel        string
	ConstituentsURL string
	QuoteURL        string
	CacheTTL        time.Duration
	QuoteRateLimit  float64 // quote requests per second
	WarmSchedule    string  // cron expression for the background cache warm
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvAsInt("PORT", 8010),
		DevMode:         getEnvAsBool("DEV_MODE", false),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ConstituentsURL: getEnv("CONSTITUENTS_URL", "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"),
		QuoteURL:        getEnv("QUOTE_URL", "https://query1.finance.yahoo.com/v7/finance/quote"),
		CacheTTL:        time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 3600)) * time.Second,
		QuoteRateLimit:  getEnvAsFloat("QUOTE_RATE_LIMIT", 4.0),
		WarmSchedule:    getEnv("WARM_SCHEDULE", "@hourly"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.ConstituentsURL == "" {
		return fmt.Errorf("CONSTITUENTS_URL is required")
	}
	if c.QuoteURL == "" {
		return fmt.Errorf("QUOTE_URL is required")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must be positive")
	}
	if c.QuoteRateLimit <= 0 {
		return fmt.Errorf("QUOTE_RATE_LIMIT must be positive")
	}
	return nil
}

// Helper functions
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
