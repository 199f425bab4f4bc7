// Package config loads bag's user configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// FileName is the name of the user configuration file.
	FileName = ".bagconfig.yaml"

	// EnvPrefix prefixes environment overrides, e.g. BAG_LOG_LEVEL.
	EnvPrefix = "BAG"

	// Default configuration values
	DefaultLogLevel = "warn"
	DefaultSeed     = true
	DefaultColor    = ColorAuto
	DefaultTimings  = true
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	keyLogLevel = "log_level"
	keySeed     = "seed"
	keyColor    = "color"
	keyTimings  = "timings"
)

// Validation errors.
var (
	ErrInvalidLogLevel = errors.New("log level must be one of: debug, info, warn, error")
	ErrInvalidColor    = errors.New("color must be one of: auto, always, never")
)

// Config represents user configuration from .bagconfig.yaml.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel string `mapstructure:"log_level"`

	// Seed loads the sample inventory into both stores at startup.
	Seed bool `mapstructure:"seed"`

	// Color selects colored output: auto (terminal only), always, or never.
	Color string `mapstructure:"color"`

	// Timings prints elapsed time after searches and sorts.
	Timings bool `mapstructure:"timings"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Seed:     DefaultSeed,
		Color:    DefaultColor,
		Timings:  DefaultTimings,
	}
}

// Load reads configuration from file, or from .bagconfig.yaml in dir when
// file is empty. A missing .bagconfig.yaml is not an error; a missing explicit
// file is. Partial files are merged with defaults, and BAG_* environment
// variables take priority over the file.
func Load(dir, file string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keyLogLevel, DefaultLogLevel)
	v.SetDefault(keySeed, DefaultSeed)
	v.SetDefault(keyColor, DefaultColor)
	v.SetDefault(keyTimings, DefaultTimings)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigFile(filepath.Join(dir, FileName))
	}

	if err := v.ReadInConfig(); err != nil {
		if file != "" || !isNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return ErrInvalidColor
	}
	return nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}
