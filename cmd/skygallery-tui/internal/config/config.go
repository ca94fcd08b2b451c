// Package config provides configuration management for the skygallery TUI.
package config

import (
	"os"
	"time"

	appconfig "github.com/iconidentify/skygallery/internal/config"
)

// Config holds the TUI configuration.
type Config struct {
	Feed appconfig.FeedConfig

	// Title shown in the header.
	Title string

	// LogFile receives JSON logs; empty discards them.
	LogFile string
}

// Load returns configuration from environment variables with sensible defaults.
// Feed variables share their names with the server.
func Load() *Config {
	return &Config{
		Feed: appconfig.FeedConfig{
			URL:       getEnv("FEED_URL", appconfig.DefaultFeedURL),
			Timeout:   getDuration("FEED_TIMEOUT", 20*time.Second),
			UserAgent: getEnv("FEED_USER_AGENT", "skygallery-tui/1.0"),
			File:      getEnv("FEED_FILE", ""),
		},
		Title:   getEnv("UI_TITLE", "NASA Space Explorer"),
		LogFile: getEnv("SKYGALLERY_TUI_LOG", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
