// Package config loads leadquiz settings from a YAML file and the
// environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBookingURL is the calendar page the contact screen links to.
const DefaultBookingURL = "https://outlook.office.com/book/MeetingwithByondIntelligence@byondx.app/"

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ProcessingConfig controls the pause between the final answer and the result.
type ProcessingConfig struct {
	// Enabled shows the processing indicator. Disabled means zero delay.
	Enabled bool `yaml:"enabled"`

	// Delay is how long the indicator stays up.
	Delay time.Duration `yaml:"delay"`
}

// AnalysisConfig controls the analysis generator.
type AnalysisConfig struct {
	// PoolSize is the number of template variants per family in the content
	// packs.
	PoolSize int `yaml:"pool_size"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// File receives JSON log lines. Empty disables logging in the TUI.
	File string `yaml:"file"`
}

// Config holds all leadquiz settings.
type Config struct {
	// Locale is a BCP 47 tag. Empty means detect from LANG / LC_ALL.
	Locale string `yaml:"locale"`

	// Theme is "dark" or "light".
	Theme string `yaml:"theme"`

	// Welcome shows the splash screen on start.
	Welcome bool `yaml:"welcome"`

	Processing ProcessingConfig `yaml:"processing"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Log        LogConfig        `yaml:"log"`

	// LocalesDir holds extra content packs that extend or replace the
	// built-in ones.
	LocalesDir string `yaml:"locales_dir"`

	// BookingURL is shown on the contact screen.
	BookingURL string `yaml:"booking_url"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Theme:   ThemeDark,
		Welcome: true,
		Processing: ProcessingConfig{
			Enabled: true,
			Delay:   600 * time.Millisecond,
		},
		Analysis: AnalysisConfig{
			PoolSize: 5,
		},
		Log: LogConfig{
			Level: "info",
		},
		BookingURL: DefaultBookingURL,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/leadquiz/config.yaml, or the
// platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".leadquiz", "config.yaml")
	}
	return filepath.Join(dir, "leadquiz", "config.yaml")
}

// Load reads the YAML file at path on top of the defaults.
// A missing file yields the defaults without error; a malformed one is an
// error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Durations are written as strings ("750ms") and booleans need to be
	// told apart from absent keys.
	type yamlConfig struct {
		Locale     string `yaml:"locale"`
		Theme      string `yaml:"theme"`
		Welcome    *bool  `yaml:"welcome"`
		Processing struct {
			Enabled *bool  `yaml:"enabled"`
			Delay   string `yaml:"delay"`
		} `yaml:"processing"`
		Analysis   AnalysisConfig `yaml:"analysis"`
		Log        LogConfig      `yaml:"log"`
		LocalesDir string         `yaml:"locales_dir"`
		BookingURL string         `yaml:"booking_url"`
	}

	var y yamlConfig
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if y.Locale != "" {
		cfg.Locale = y.Locale
	}
	if y.Theme != "" {
		cfg.Theme = y.Theme
	}
	if y.Welcome != nil {
		cfg.Welcome = *y.Welcome
	}
	if y.Processing.Enabled != nil {
		cfg.Processing.Enabled = *y.Processing.Enabled
	}
	if y.Processing.Delay != "" {
		d, err := time.ParseDuration(y.Processing.Delay)
		if err != nil {
			return nil, fmt.Errorf("invalid processing.delay %q: %w", y.Processing.Delay, err)
		}
		cfg.Processing.Delay = d
	}
	if y.Analysis.PoolSize != 0 {
		cfg.Analysis.PoolSize = y.Analysis.PoolSize
	}
	if y.Log.Level != "" {
		cfg.Log.Level = y.Log.Level
	}
	if y.Log.File != "" {
		cfg.Log.File = y.Log.File
	}
	if y.LocalesDir != "" {
		cfg.LocalesDir = y.LocalesDir
	}
	if y.BookingURL != "" {
		cfg.BookingURL = y.BookingURL
	}

	return cfg, nil
}

// ApplyEnv overrides settings from LEADQUIZ_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("LEADQUIZ_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("LEADQUIZ_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("LEADQUIZ_WELCOME"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LEADQUIZ_WELCOME: %w", err)
		}
		c.Welcome = b
	}
	if v := os.Getenv("LEADQUIZ_PROCESSING_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("LEADQUIZ_PROCESSING_DELAY: %w", err)
		}
		c.Processing.Delay = d
	}
	if v := os.Getenv("LEADQUIZ_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("LEADQUIZ_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LEADQUIZ_LOCALES_DIR"); v != "" {
		c.LocalesDir = v
	}
	return nil
}

// ProcessingDelay returns the effective delay: zero when processing is
// disabled.
func (c *Config) ProcessingDelay() time.Duration {
	if !c.Processing.Enabled {
		return 0
	}
	return c.Processing.Delay
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	switch c.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("invalid theme %q, must be one of: dark, light", c.Theme)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q, must be one of: debug, info, warn, error", c.Log.Level)
	}

	if c.Processing.Delay < 0 {
		return fmt.Errorf("processing.delay must be >= 0, got %v", c.Processing.Delay)
	}
	if c.Analysis.PoolSize <= 0 {
		return fmt.Errorf("analysis.pool_size must be > 0, got %d", c.Analysis.PoolSize)
	}

	if c.BookingURL != "" {
		u, err := url.Parse(c.BookingURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid booking_url %q", c.BookingURL)
		}
	}
	return nil
}
