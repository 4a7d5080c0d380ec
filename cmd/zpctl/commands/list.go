package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the pools active on the system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			pools, err := app.pools.All(cmd.Context())
			if err != nil {
				return err
			}

			if len(pools) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no active pools")

				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tHEALTH")
			for _, p := range pools {
				fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Health)
			}

			return w.Flush()
		},
	}
}
