// Package config provides configuration loading and validation for the
// analyzer API server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds the server configuration. Values come from the environment,
// optionally overlaid on a JSON config file.
type Config struct {
	APIKey         string `json:"api_key,omitempty"`         // Completion API key (required)
	Model          string `json:"model,omitempty"`           // Model name; empty uses the client default
	BaseURL        string `json:"base_url,omitempty"`        // Completion API root; empty uses the client default
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Per-attempt completion timeout
	Port           string `json:"port,omitempty"`            // HTTP listen port
	Environment    string `json:"environment,omitempty"`     // "development" enables error detail in responses
}

// FromEnv builds a Config from environment variables, applying defaults for
// everything except the API key.
func FromEnv() *Config {
	cfg := &Config{
		APIKey:      os.Getenv("LLM_API_KEY"),
		Model:       os.Getenv("LLM_MODEL"),
		BaseURL:     os.Getenv("LLM_BASE_URL"),
		Port:        os.Getenv("PORT"),
		Environment: os.Getenv("APP_ENV"),
	}

	if v := os.Getenv("LLM_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.TimeoutSeconds = secs
		}
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "production"
	}
	return cfg
}

// Load reads a JSON config file. Returns an error if the file cannot be read
// or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge overlays non-zero values from other onto the receiver.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.APIKey != "" {
		c.APIKey = other.APIKey
	}
	if other.Model != "" {
		c.Model = other.Model
	}
	if other.BaseURL != "" {
		c.BaseURL = other.BaseURL
	}
	if other.TimeoutSeconds > 0 {
		c.TimeoutSeconds = other.TimeoutSeconds
	}
	if other.Port != "" {
		c.Port = other.Port
	}
	if other.Environment != "" {
		c.Environment = other.Environment
	}
}

// Validate checks that required values are present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required")
	}
	return nil
}

// Timeout converts TimeoutSeconds to a duration; zero means the client
// default.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// IsDevelopment reports whether error details should be included in HTTP
// responses.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
