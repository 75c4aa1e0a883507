// Package config holds the runtime configuration of the venueplan CLI.
//
// Values come from, in increasing priority: built-in defaults, the
// VENUEPLAN_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Environment variables read by FromEnv.
const (
	EnvVenues    = "VENUEPLAN_VENUES"
	EnvLogLevel  = "VENUEPLAN_LOG_LEVEL"
	EnvLogFormat = "VENUEPLAN_LOG_FORMAT"
)

// Defaults.
const (
	DefaultVenuesPath = "venues.txt"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = FormatConsole
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds runtime wiring options.
type Config struct {
	VenuesPath string // venue description file read at startup
	LogLevel   string // debug, info, warn, error
	LogFormat  string // console or json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		VenuesPath: DefaultVenuesPath,
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
	}
}

// FromEnv returns Default overridden by any non-empty VENUEPLAN_* variable.
// A nil lookup reads the process environment.
func FromEnv(lookup func(string) (string, bool)) Config {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := Default()
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(&cfg.VenuesPath, EnvVenues)
	set(&cfg.LogLevel, EnvLogLevel)
	set(&cfg.LogFormat, EnvLogFormat)

	return cfg
}

// Level returns the parsed log level.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}

	return lvl, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if strings.TrimSpace(c.VenuesPath) == "" {
		return fmt.Errorf("%w: venues path is empty", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: log format %q (want %s or %s)", ErrInvalidConfig, c.LogFormat, FormatConsole, FormatJSON)
	}
}
