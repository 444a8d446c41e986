// Package config loads the server configuration from a TOML file, with
// environment-variable discovery and defaults for anything not set.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the complete application configuration.
type Config struct {
	Server Server `toml:"server"`
	Field  Field  `toml:"field"`
}

// Server holds HTTP server settings.
type Server struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	SessionTTL      Duration `toml:"session_ttl"`
	CleanupInterval Duration `toml:"cleanup_interval"`
}

// Field holds the defaults applied to sessions that omit options.
type Field struct {
	Currency          string   `toml:"currency"`
	Locale            string   `toml:"locale"`
	FractionDigits    *int     `toml:"fraction_digits"`
	MinFractionDigits *int     `toml:"min_fraction_digits"`
	MaxFractionDigits *int     `toml:"max_fraction_digits"`
	Minimum           *float64 `toml:"minimum"`
	Maximum           *float64 `toml:"maximum"`
	AllowNegative     bool     `toml:"allow_negative"`
	MaxIntegerDigits  *int     `toml:"max_integer_digits"`
	Mode              string   `toml:"mode"`
}

// Duration wraps time.Duration for TOML parsing.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load loads configuration from a TOML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv loads configuration from the MASK_CONFIG environment
// variable or the default search paths. A missing file is not an error:
// the defaults alone make a working configuration.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("MASK_CONFIG")
	if path == "" {
		candidates := []string{
			"./configs/config.toml",
			"./config.toml",
			filepath.Join(os.Getenv("HOME"), ".config/currency-mask/config.toml"),
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		cfg := &Config{}
		cfg.applyDefaults()
		return cfg, nil
	}
	return Load(path)
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 10 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 10 * time.Second
	}
	if c.Server.SessionTTL.Duration == 0 {
		c.Server.SessionTTL.Duration = 30 * time.Minute
	}
	if c.Server.CleanupInterval.Duration == 0 {
		c.Server.CleanupInterval.Duration = time.Minute
	}

	if c.Field.Currency == "" {
		c.Field.Currency = "USD"
	}
	if c.Field.Locale == "" {
		c.Field.Locale = "en-US"
	}
	if c.Field.Mode == "" {
		c.Field.Mode = "currency"
	}
}
