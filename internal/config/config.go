// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultServerURL      = "http://localhost:5000"
	DefaultRequestTimeout = 10 * time.Second
	DefaultWaterTarget    = 2.5
	DefaultWaterStep      = 0.25
)

// Config holds the full configuration for dayboard.
type Config struct {
	// Backend
	ServerURL             string `toml:"server_url"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`

	// Physical tracking
	WaterTargetLiters float64 `toml:"water_target_liters"`
	WaterStepLiters   float64 `toml:"water_step_liters"`

	// New-day notification at midnight
	DailyNotification bool `toml:"daily_notification"`

	// Theme name (see internal/tui themes)
	Theme string `toml:"theme"`
}

// RequestTimeout returns the per-request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return DefaultRequestTimeout
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Load loads configuration in priority order: defaults, then the TOML
// config file (if present), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}

	loadFromEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.ServerURL = DefaultServerURL
	cfg.RequestTimeoutSeconds = int(DefaultRequestTimeout / time.Second)
	cfg.WaterTargetLiters = DefaultWaterTarget
	cfg.WaterStepLiters = DefaultWaterStep
	cfg.DailyNotification = true
	cfg.Theme = "default"
}

// findConfigFile returns the first config file that exists, or "".
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidates := []string{
		filepath.Join(home, ".config", "dayboard", "config.toml"),
		filepath.Join(home, ".dayboard.toml"),
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func loadFromEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("DAYBOARD_SERVER")); v != "" {
		cfg.ServerURL = v
	}
}

func validate(cfg *Config) error {
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")
	if cfg.ServerURL == "" {
		return fmt.Errorf("server_url must not be empty")
	}
	if cfg.WaterTargetLiters <= 0 {
		cfg.WaterTargetLiters = DefaultWaterTarget
	}
	if cfg.WaterStepLiters <= 0 {
		cfg.WaterStepLiters = DefaultWaterStep
	}
	return nil
}
