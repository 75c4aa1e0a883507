// Package logging builds the zap logger shared by the CLI and the libraries
// it wires together.
package logging

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/venueplan/internal/config"
)

// New returns a logger for cfg: JSON production encoding for "json",
// human-readable development encoding otherwise. Logs go to stderr so that
// command output on stdout stays clean.
func New(cfg config.Config, opts ...zap.Option) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zc := zap.NewDevelopmentConfig()
	if cfg.LogFormat == config.FormatJSON {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build(opts...)
}
