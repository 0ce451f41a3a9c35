package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("VITE_GOOGLE_OAUTH2_CLIENT_ID", "client-123.apps.googleusercontent.com")
	t.Setenv("VITE_OAUTH_LOGIN_URL", "https://texinroistot.example/api/login")
	t.Setenv("BACKEND_HOST", "http://localhost:6969/")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "client-123.apps.googleusercontent.com", cfg.GoogleClientID)
	assert.Equal(t, ":3000", cfg.ListenAddr)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "journal.db", cfg.JournalPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, "http://localhost:6969", cfg.BackendURL().String())
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("UPSTREAM_TIMEOUT", "2s")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, ,https://texinroistot.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "https://texinroistot.example"}, cfg.AllowedOrigins)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("VITE_GOOGLE_OAUTH2_CLIENT_ID", "")
	t.Setenv("VITE_OAUTH_LOGIN_URL", "")
	t.Setenv("BACKEND_HOST", "")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg := Config{
		GoogleClientID:  "client",
		OAuthLoginURL:   "/api/login",
		BackendHost:     "localhost:6969",
		UpstreamTimeout: 0,
		JournalPath:     "journal.db",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VITE_OAUTH_LOGIN_URL")
	assert.Contains(t, err.Error(), "BACKEND_HOST")
	assert.Contains(t, err.Error(), "UPSTREAM_TIMEOUT")
}

func TestValidate_OK(t *testing.T) {
	cfg := Config{
		GoogleClientID:  "client",
		OAuthLoginURL:   "https://texinroistot.example/api/login",
		BackendHost:     "https://api.texinroistot.example",
		UpstreamTimeout: time.Second,
		JournalPath:     ":memory:",
	}
	assert.NoError(t, cfg.Validate())
}
