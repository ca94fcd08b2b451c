package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultFeedURL is the static APOD feed the gallery renders.
const DefaultFeedURL = "https://cdn.jsdelivr.net/gh/GCA-Classroom/apod/data.json"

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Feed   FeedConfig   `yaml:"feed"`
	UI     UIConfig     `yaml:"ui"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string        `yaml:"host" envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port         int           `yaml:"port" envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
}

// FeedConfig holds configuration for the item feed.
type FeedConfig struct {
	URL       string        `yaml:"url" envconfig:"FEED_URL" default:"https://cdn.jsdelivr.net/gh/GCA-Classroom/apod/data.json"`
	Timeout   time.Duration `yaml:"timeout" envconfig:"FEED_TIMEOUT" default:"20s"`
	UserAgent string        `yaml:"user_agent" envconfig:"FEED_USER_AGENT" default:"skygallery/1.0"`
	// File, when set, serves items from a local JSON file instead of URL.
	File string `yaml:"file" envconfig:"FEED_FILE"`
}

// UIConfig holds page rendering configuration.
type UIConfig struct {
	Title         string        `yaml:"title" envconfig:"UI_TITLE" default:"NASA Space Explorer"`
	RenderTimeout time.Duration `yaml:"render_timeout" envconfig:"UI_RENDER_TIMEOUT" default:"1m"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	// Load from YAML file if provided
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	// Override with environment variables
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set.
func (c *Config) Validate() error {
	if c.Feed.File == "" {
		if c.Feed.URL == "" {
			return fmt.Errorf("FEED_URL is required")
		}
		u, err := url.Parse(c.Feed.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("FEED_URL must be an absolute http(s) URL, got %q", c.Feed.URL)
		}
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT out of range: %d", c.Server.Port)
	}
	return nil
}

// Address returns the server address in host:port format.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
