package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"popfly/internal/domain"
)

// set-faction <nato|ru>: persist the default mil system.
func setFactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-faction <nato|ru>",
		Short: "Persist the default mil system (nato=6400, ru=6000)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			system, err := domain.ParseAngularSystem(args[0])
			if err != nil {
				return err
			}
			if err := appCtx.Config.SaveFaction(system); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Faction set to %s.\n", system)
			return nil
		},
	}
}
