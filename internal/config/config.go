// Package config loads the YAML configuration of the timely command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // zones resolve without a system zoneinfo

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone     = "UTC"
	defaultLogLevel     = "info"
	defaultMaxDatetimes = 500
)

// Config is the configuration of the timely command.
type Config struct {
	// Timezone is the IANA zone in which times without an offset are read.
	Timezone string `yaml:"timezone"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// MaxDatetimes caps the instants printed per interval.
	MaxDatetimes int `yaml:"max_datetimes"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Timezone:     defaultTimezone,
		LogLevel:     defaultLogLevel,
		MaxDatetimes: defaultMaxDatetimes,
	}
}

// Normalize fills in zero values so that partial files behave like the
// defaults.
func (c *Config) Normalize() {
	if c.Timezone == "" {
		c.Timezone = defaultTimezone
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.MaxDatetimes <= 0 {
		c.MaxDatetimes = defaultMaxDatetimes
	}
}

// Load reads the YAML file at path. An empty path or a missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Normalize()

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Level resolves LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
