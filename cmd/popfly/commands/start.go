package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"popfly/internal/grid"
)

// set-start <pair>: persist a default start point for later computations.
func setStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-start <EEE,NNN>",
		Short: "Persist a default start point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := grid.ParsePair(args[0])
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			if err := appCtx.Config.SaveStart(p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Start saved: %g,%g\n", p.Easting, p.Northing)
			return nil
		},
	}
}

func showStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-start",
		Short: "Show the persisted start point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, found, err := appCtx.Config.LoadStart()
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), "No persisted start found.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Persisted start: %g,%g\n", p.Easting, p.Northing)
			return nil
		},
	}
}

func clearStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-start",
		Short: "Remove the persisted start point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Config.ClearStart(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Start cleared.")
			return nil
		},
	}
}
