package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	settings := Load()

	assert.Equal(t, "Portfolio", settings.AppName)
	assert.Equal(t, "development", settings.Environment)
	assert.Equal(t, "8080", settings.Port)
	assert.Equal(t, "KhaledELG", settings.GitHubUsername)
	assert.Empty(t, settings.GitHubToken)
	assert.Equal(t, 900*time.Second, settings.CacheTTL)
	assert.Equal(t, "en", settings.DefaultLocale)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_NAME", "My Site")
	t.Setenv("GITHUB_USERNAME", "someone")
	t.Setenv("GITHUB_TOKEN", "tok123")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("DEFAULT_LOCALE", "fr")

	settings := Load()

	assert.Equal(t, "My Site", settings.AppName)
	assert.Equal(t, "someone", settings.GitHubUsername)
	assert.Equal(t, "tok123", settings.GitHubToken)
	assert.Equal(t, time.Minute, settings.CacheTTL)
	assert.Equal(t, "fr", settings.DefaultLocale)
}

func TestLoadRejectsBadTTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  string
	}{
		{"not a number", "soon"},
		{"zero", "0"},
		{"negative", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CACHE_TTL_SECONDS", tt.ttl)
			assert.Equal(t, 900*time.Second, Load().CacheTTL)
		})
	}
}
