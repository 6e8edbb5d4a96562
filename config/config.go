// Package config loads lsaroute settings from an optional YAML file and the
// environment, applying defaults.
//
// Precedence, lowest first: defaults, YAML file, LSAROUTE_* environment
// variables. Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config aggregates CLI configuration values.
type Config struct {
	// Input is the default LSA file read when no positional file is given.
	Input string `yaml:"input"`

	// Source is the default source node id.
	Source string `yaml:"source"`

	// MaxDistance caps exploration; 0 disables the cap.
	MaxDistance int64 `yaml:"max_distance"`

	Logging Logging `yaml:"logging"`
	Watch   Watch   `yaml:"watch"`
}

// Logging controls structured logging settings.
type Logging struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // text|json
}

// Watch tunes the file watcher.
type Watch struct {
	// Debounce coalesces bursts of write events into one reload.
	Debounce time.Duration `yaml:"debounce"`
}

const (
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
	defaultDebounce      = 100 * time.Millisecond
)

// Environment variable names.
const (
	EnvInput       = "LSAROUTE_INPUT"
	EnvSource      = "LSAROUTE_SOURCE"
	EnvLogLevel    = "LSAROUTE_LOG_LEVEL"
	EnvLogFormat   = "LSAROUTE_LOG_FORMAT"
	EnvMaxDistance = "LSAROUTE_MAX_DISTANCE"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
		Watch: Watch{Debounce: defaultDebounce},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Input = valueOrDefault(EnvInput, c.Input)
	c.Source = valueOrDefault(EnvSource, c.Source)
	c.Logging.Level = valueOrDefault(EnvLogLevel, c.Logging.Level)
	c.Logging.Format = valueOrDefault(EnvLogFormat, c.Logging.Format)

	if v := os.Getenv(EnvMaxDistance); v != "" {
		d, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvMaxDistance, err)
		}
		c.MaxDistance = d
	}

	return nil
}

// Validate checks that the Config is usable.
func (c Config) Validate() error {
	if c.MaxDistance < 0 {
		return fmt.Errorf("%w: max_distance must be non-negative, got %d", ErrInvalidConfig, c.MaxDistance)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown logging level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown logging format %q", ErrInvalidConfig, c.Logging.Format)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("%w: watch.debounce must be non-negative", ErrInvalidConfig)
	}

	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
