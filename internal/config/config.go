// Package config provides configuration for the randorg CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTimeout is used when neither the config file nor the environment
// sets one.
const DefaultTimeout = 30 * time.Second

// Config holds all configuration for the randorg CLI.
type Config struct {
	// APIKey is the RANDOM.ORG API key. Required.
	APIKey string `yaml:"api_key"`

	// Endpoint overrides the API invocation URL. Empty means the library
	// default.
	Endpoint string `yaml:"endpoint"`

	// Timeout is the per-call timeout as a Go duration string ("30s").
	Timeout string `yaml:"timeout"`

	// WarnBitsBelow and WarnRequestsBelow enable low-quota warnings when
	// the remaining allowance drops under the threshold. Zero disables.
	WarnBitsBelow     int64 `yaml:"warn_bits_below"`
	WarnRequestsBelow int64 `yaml:"warn_requests_below"`
}

// Load creates a Config from the config file and environment variables.
// Values are resolved in order: environment variable > config file > default.
func Load() (*Config, error) {
	cfg := &Config{}

	path := Path()
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	cfg.APIKey = envOr("RANDOMORG_API_KEY", cfg.APIKey)
	cfg.Endpoint = envOr("RANDOMORG_ENDPOINT", cfg.Endpoint)
	cfg.Timeout = envOr("RANDOMORG_TIMEOUT", cfg.Timeout)
	cfg.WarnBitsBelow = envOrInt64("RANDOMORG_WARN_BITS_BELOW", cfg.WarnBitsBelow)
	cfg.WarnRequestsBelow = envOrInt64("RANDOMORG_WARN_REQUESTS_BELOW", cfg.WarnRequestsBelow)

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("no API key: set RANDOMORG_API_KEY or api_key in %s", Path())
	}
	return nil
}

// TimeoutOrDefault parses the configured timeout, falling back to
// DefaultTimeout when unset or unparseable.
func (c *Config) TimeoutOrDefault() time.Duration {
	if c.Timeout != "" {
		if d, err := time.ParseDuration(c.Timeout); err == nil && d > 0 {
			return d
		}
	}
	return DefaultTimeout
}

// Path returns the config file location: $RANDORG_CONFIG if set, otherwise
// ~/.randorg/config.yaml.
func Path() string {
	if p := os.Getenv("RANDORG_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".randorg", "config.yaml")
	}
	return filepath.Join(home, ".randorg", "config.yaml")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
