package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/venueplan/allocator"
	"github.com/katalvlaran/venueplan/internal/shell"
)

func shellCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive allocation session",
		Long: "Reads commands from stdin, one per line. A venue file that cannot be\n" +
			"read or parsed ends the program before the session starts.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			venues, err := rt.loadVenues()
			if err != nil {
				return err
			}
			a := allocator.New(venues, allocator.WithLogger(rt.logger.Named("allocator")))
			rt.logger.Debug("session started", zap.Int("venues", len(venues)))

			return shell.New(a, cmd.OutOrStdout(), rt.logger.Named("shell")).Run(cmd.InOrStdin())
		},
	}
}
