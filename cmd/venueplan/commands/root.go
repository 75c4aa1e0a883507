package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/venueplan/core"
	"github.com/katalvlaran/venueplan/internal/config"
	"github.com/katalvlaran/venueplan/internal/logging"
	"github.com/katalvlaran/venueplan/venuefile"
)

// runtime is the state shared by subcommands once the root pre-run has resolved it.
type runtime struct {
	cfg    config.Config
	logger *zap.Logger
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	rt := &runtime{logger: zap.NewNop()}
	var (
		venuesPath string
		logLevel   string
		logFormat  string
	)

	root := &cobra.Command{
		Use:          "venueplan",
		Short:        "Allocate events to venues without overloading traffic corridors",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv(nil)
			flags := cmd.Flags()
			if flags.Changed("venues") {
				cfg.VenuesPath = venuesPath
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := logging.New(cfg)
			if err != nil {
				return err
			}
			rt.cfg, rt.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = rt.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&venuesPath, "venues", config.DefaultVenuesPath, "venue description file (env "+config.EnvVenues+")")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error (env "+config.EnvLogLevel+")")
	pf.StringVar(&logFormat, "log-format", config.DefaultLogFormat, "console or json (env "+config.EnvLogFormat+")")

	root.AddCommand(venuesCmd(rt), validateCmd(rt), shellCmd(rt))
	return root
}

func (rt *runtime) loadVenues() ([]core.Venue, error) {
	return venuefile.ReadFile(rt.cfg.VenuesPath, venuefile.WithLogger(rt.logger))
}
