package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg := LoadFromEnv()

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "release", cfg.GinMode)

	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", ":9090")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("GIN_MODE", "test")

	cfg := LoadFromEnv()

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "test", cfg.GinMode)

	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Run("invalid gin mode", func(t *testing.T) {
		cfg := LoadFromEnv()
		cfg.GinMode = "production"

		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := LoadFromEnv()
		cfg.Logger.Level = "trace"

		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid log format", func(t *testing.T) {
		cfg := LoadFromEnv()
		cfg.Logger.Format = "xml"

		assert.Error(t, cfg.Validate())
	})

	t.Run("non positive timeout", func(t *testing.T) {
		cfg := LoadFromEnv()
		cfg.Server.ReadTimeout = 0

		assert.Error(t, cfg.Validate())
	})
}
