package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Active    string `yaml:"active"`
	Inactive  string `yaml:"inactive"`
	Threshold int    `yaml:"threshold"`
	LogLevel  string `yaml:"log_level"`
	Clear     bool   `yaml:"clear"`
}

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return &Config{
		Active:    "#",
		Inactive:  ".",
		Threshold: 128,
		LogLevel:  "warn",
	}
}

// DefaultPath is the config file used when none is given
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bwdraw", "config.yaml"), nil
}

// Load reads the config file at path. Values missing from the file keep their
// defaults
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every value of the Config is usable
func (cfg *Config) Validate() error {
	if _, err := SingleRune(cfg.Active); err != nil {
		return fmt.Errorf("active: %w", err)
	}
	if _, err := SingleRune(cfg.Inactive); err != nil {
		return fmt.Errorf("inactive: %w", err)
	}
	if cfg.Threshold < 0 || cfg.Threshold > 255 {
		return fmt.Errorf("threshold: %d is not within 0..255", cfg.Threshold)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// SingleRune returns the only rune of s
func SingleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// ParseLevel converts a level name to a slog.Level
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown level %q", s)
	}
}
