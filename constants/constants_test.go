package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPort(t *testing.T) {
	t.Setenv("PORT", "")
	assert.Equal(t, DefaultPort, GetPort())

	t.Setenv("PORT", "9000")
	assert.Equal(t, 9000, GetPort())

	t.Setenv("PORT", "nope")
	assert.Equal(t, DefaultPort, GetPort())
}

func TestGetAllowedOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	assert.Equal(t, []string{"*"}, GetAllowedOrigins())

	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://example.com,")
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, GetAllowedOrigins())
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, "info", GetLogLevel())

	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, "debug", GetLogLevel())
}
