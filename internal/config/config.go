package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings, read from environment variables.
type Config struct {
	Port            string        // HTTP listen port, ex: "8080"
	BaseURL         string        // externally visible base URL
	DatabasePath    string        // sqlite file path, or ":memory:"
	RedisAddr       string        // optional, empty disables the cache
	RateLimit       int           // requests per minute per IP
	LogLevel        string        // "debug" | "info" | "warn" | "error"
	ShutdownTimeout time.Duration // graceful shutdown deadline
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getenv("PORT", "8080"),
		BaseURL:         getenv("BASE_URL", "http://localhost:8080"),
		DatabasePath:    getenv("DATABASE_PATH", "data/markfy.db"),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		ShutdownTimeout: 10 * time.Second,
	}

	rateLimit := getenv("RATE_LIMIT", "100")
	n, err := strconv.Atoi(rateLimit)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid RATE_LIMIT value: %q", rateLimit)
	}
	cfg.RateLimit = n

	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT value: %q", raw)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

func getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
