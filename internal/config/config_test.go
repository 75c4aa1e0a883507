package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/venueplan/internal/config"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "venues.txt", cfg.VenuesPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.FormatConsole, cfg.LogFormat)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	cfg := config.FromEnv(envMap(map[string]string{
		config.EnvVenues:    " /srv/venues.txt ",
		config.EnvLogLevel:  "debug",
		config.EnvLogFormat: "",
	}))
	assert.Equal(t, "/srv/venues.txt", cfg.VenuesPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.FormatConsole, cfg.LogFormat, "empty values keep the default")

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)
}

func TestFromEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv(config.EnvLogFormat, "json")
	assert.Equal(t, config.FormatJSON, config.FromEnv(nil).LogFormat)
}

func TestValidate(t *testing.T) {
	cases := map[string]config.Config{
		"empty path": {VenuesPath: " ", LogLevel: "info", LogFormat: "json"},
		"bad level":  {VenuesPath: "v.txt", LogLevel: "loud", LogFormat: "json"},
		"bad format": {VenuesPath: "v.txt", LogLevel: "info", LogFormat: "xml"},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
