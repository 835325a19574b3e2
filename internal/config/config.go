// Package config loads site settings from the environment. A .env file, if
// present, is loaded by the godotenv autoload import in main.
package config

import (
	"os"
	"strconv"
	"time"
)

// Settings is the environment-backed configuration surface.
type Settings struct {
	AppName        string
	Environment    string
	Port           string
	GitHubUsername string
	GitHubToken    string // empty means anonymous requests
	CacheTTL       time.Duration
	DefaultLocale  string
	DatabasePath   string
}

// Load reads settings from the environment, falling back to defaults.
func Load() Settings {
	return Settings{
		AppName:        getString("APP_NAME", "Portfolio"),
		Environment:    getString("ENVIRONMENT", "development"),
		Port:           getString("PORT", "8080"),
		GitHubUsername: getString("GITHUB_USERNAME", "KhaledELG"),
		GitHubToken:    os.Getenv("GITHUB_TOKEN"),
		CacheTTL:       time.Duration(getInt("CACHE_TTL_SECONDS", 900)) * time.Second,
		DefaultLocale:  getString("DEFAULT_LOCALE", "en"),
		DatabasePath:   getString("DATABASE_PATH", "portfolio.db"),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
