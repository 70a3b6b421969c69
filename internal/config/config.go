package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Environment
	RunMode string // Set via flag, not env

	// Database
	DatabaseURL string

	// Redis (asynq broker)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// LINE platform
	LineChannelSecret      string
	LineChannelAccessToken string

	// Server
	ApiPort string

	// Business rules
	DepositRate    float64 // fraction of monthly rent charged as deposit/commission
	SearchPageSize int     // max properties per search result carousel

	// Rate Limiting Defaults
	RateLimitBucketSize int
	RateLimitRefillRate int // tokens per second
}

// Load configuration from environment variables.
// RunMode needs to be passed in as it comes from command-line flags.
func Load(runMode string) (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	cfg := &Config{
		RunMode: runMode, // Set from flag
	}

	var err error

	// Helper function to get env var or default
	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	// Helper function to get required env var
	getRequiredEnv := func(key string) (string, error) {
		value, exists := os.LookupEnv(key)
		if !exists {
			return "", fmt.Errorf("missing required environment variable: %s", key)
		}
		return value, nil
	}

	cfg.DatabaseURL, err = getRequiredEnv("DATABASE_URL")
	if err != nil {
		return nil, err
	}
	cfg.LineChannelSecret, err = getRequiredEnv("LINE_CHANNEL_SECRET")
	if err != nil {
		return nil, err
	}
	cfg.LineChannelAccessToken, err = getRequiredEnv("LINE_CHANNEL_ACCESS_TOKEN")
	if err != nil {
		return nil, err
	}

	cfg.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.ApiPort = getEnv("API_PORT", "3000")

	cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg.DepositRate, err = strconv.ParseFloat(getEnv("DEPOSIT_RATE", "0.10"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEPOSIT_RATE: %w", err)
	}
	if cfg.DepositRate <= 0 || cfg.DepositRate >= 1 {
		return nil, fmt.Errorf("DEPOSIT_RATE must be between 0 and 1, got %f", cfg.DepositRate)
	}

	cfg.SearchPageSize, err = strconv.Atoi(getEnv("SEARCH_PAGE_SIZE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_PAGE_SIZE: %w", err)
	}

	cfg.RateLimitBucketSize, err = strconv.Atoi(getEnv("RATE_LIMIT_BUCKET_SIZE", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BUCKET_SIZE: %w", err)
	}
	cfg.RateLimitRefillRate, err = strconv.Atoi(getEnv("RATE_LIMIT_REFILL_RATE", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REFILL_RATE: %w", err)
	}

	return cfg, nil
}
