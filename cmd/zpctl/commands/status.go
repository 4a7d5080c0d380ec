package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <pool>",
		Short: "Show the status of a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			pool, err := app.pools.Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "pool: %s\nstate: %s\n", pool.Name, pool.Health)
			if pool.Action != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "action: %s\n", pool.Action)
			}
			if pool.Errors != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "errors: %s\n", pool.Errors)
			}

			return nil
		},
	}
}
