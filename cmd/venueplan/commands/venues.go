package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func venuesCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "venues",
		Short: "Print the venues in venue file format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			venues, err := rt.loadVenues()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, v := range venues {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprint(out, v)
			}
			return nil
		},
	}
}

func validateCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the venue file and report the first format error",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			venues, err := rt.loadVenues()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d venue(s) OK\n", rt.cfg.VenuesPath, len(venues))
			return nil
		},
	}
}
