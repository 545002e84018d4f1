// Package config loads the settings of the plexschema command.
//
// Values come from, in increasing priority: built-in defaults, the YAML file
// named by PLEXSCHEMA_CONFIG, and PLEXSCHEMA_* environment variables. A .env
// file in the working directory is loaded into the environment first.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aliceplex/schema/internal/common"
	"github.com/aliceplex/schema/internal/logging"
)

// Environment variables.
const (
	EnvConfig        = "PLEXSCHEMA_CONFIG"
	EnvLogLevel      = "PLEXSCHEMA_LOG_LEVEL"
	EnvLogFormat     = "PLEXSCHEMA_LOG_FORMAT"
	EnvStrict        = "PLEXSCHEMA_STRICT"
	EnvWorkers       = "PLEXSCHEMA_WORKERS"
	EnvDebounceMS    = "PLEXSCHEMA_WATCH_DEBOUNCE_MS"
	EnvFormatText    = "PLEXSCHEMA_FORMAT_TEXT"
	EnvTextFields    = "PLEXSCHEMA_TEXT_FIELDS"
	maxWorkers       = 256
	maxDebounceMilli = 60_000
)

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Check   CheckConfig   `yaml:"check"`
	Watch   WatchConfig   `yaml:"watch"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type CheckConfig struct {
	// Strict selects the strict schemas by default.
	Strict bool `yaml:"strict"`
	// Workers bounds the number of files checked in parallel.
	Workers int `yaml:"workers"`
	// FormatText runs the text formatter over TextFields when formatting files.
	FormatText bool     `yaml:"format_text"`
	TextFields []string `yaml:"text_fields"`
}

type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// Debounce returns the watch debounce interval.
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMS) * time.Millisecond
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
		Check: CheckConfig{
			Workers:    runtime.NumCPU(),
			TextFields: []string{"summary", "tagline"},
		},
		Watch: WatchConfig{
			DebounceMS: 300,
		},
	}
}

// Load builds the configuration from defaults, the optional file and the
// environment, and validates it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv(EnvConfig); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadFile overlays the YAML file at path on c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// ApplyEnv overlays PLEXSCHEMA_* variables on c.
func (c *Config) ApplyEnv() {
	c.Logging.Level = getEnv(EnvLogLevel, c.Logging.Level)
	c.Logging.Format = getEnv(EnvLogFormat, c.Logging.Format)
	c.Check.Strict = getEnvBool(EnvStrict, c.Check.Strict)
	c.Check.Workers = getEnvInt(EnvWorkers, c.Check.Workers)
	c.Check.FormatText = getEnvBool(EnvFormatText, c.Check.FormatText)
	c.Watch.DebounceMS = getEnvInt(EnvDebounceMS, c.Watch.DebounceMS)

	if v := os.Getenv(EnvTextFields); v != "" {
		c.Check.TextFields = parseCommaSeparated(v)
	}
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Logging.Format {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		errs = append(errs, fmt.Errorf("%s must be %q or %q", EnvLogFormat, logging.FormatJSON, logging.FormatConsole))
	}

	if !common.IsInRange(1, c.Check.Workers, maxWorkers) {
		errs = append(errs, fmt.Errorf("%s must be between 1 and %d", EnvWorkers, maxWorkers))
	}

	if !common.IsInRange(0, c.Watch.DebounceMS, maxDebounceMilli) {
		errs = append(errs, fmt.Errorf("%s must be between 0 and %d", EnvDebounceMS, maxDebounceMilli))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func parseCommaSeparated(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
