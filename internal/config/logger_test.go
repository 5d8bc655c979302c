package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerConfig_IsProduction(t *testing.T) {
	assert.True(t, LoggerConfig{Level: "info", Format: "json"}.IsProduction())
	assert.False(t, LoggerConfig{Level: "debug", Format: "json"}.IsProduction())
	assert.False(t, LoggerConfig{Level: "info", Format: "console"}.IsProduction())
}
