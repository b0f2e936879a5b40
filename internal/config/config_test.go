package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_NoEnv_AppliesDefaults verifies every default value
func TestLoad_NoEnv_AppliesDefaults(t *testing.T) {
	// Arrange
	for _, key := range []string{"PORT", "BASE_URL", "DATABASE_PATH", "REDIS_ADDR", "RATE_LIMIT", "LOG_LEVEL", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	// Act
	cfg, err := Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "data/markfy.db", cfg.DatabasePath)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

// TestLoad_EnvSet_OverridesDefaults verifies environment values win
func TestLoad_EnvSet_OverridesDefaults(t *testing.T) {
	// Arrange
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_PATH", ":memory:")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RATE_LIMIT", "50")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	// Act
	cfg, err := Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ":memory:", cfg.DatabasePath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 50, cfg.RateLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

// TestLoad_InvalidRateLimit_ReturnsError verifies validation of RATE_LIMIT
func TestLoad_InvalidRateLimit_ReturnsError(t *testing.T) {
	for _, bad := range []string{"abc", "0", "-5"} {
		t.Setenv("RATE_LIMIT", bad)

		_, err := Load()

		assert.Error(t, err, "RATE_LIMIT=%q", bad)
	}
}

// TestLoad_InvalidShutdownTimeout_ReturnsError verifies duration parsing
func TestLoad_InvalidShutdownTimeout_ReturnsError(t *testing.T) {
	// Arrange
	t.Setenv("RATE_LIMIT", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	// Act
	_, err := Load()

	// Assert
	assert.Error(t, err)
}
