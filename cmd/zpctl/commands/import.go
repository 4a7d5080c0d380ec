package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/desertwitch/zpctl/internal/configuration"
	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "import [pool]",
		Short: "List importable pools, or import one by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			searchDir := dir
			if searchDir == "" {
				searchDir = app.settings.ImportDir
			}

			if len(args) == 1 {
				if searchDir == "" {
					return fmt.Errorf("importing requires a device directory (--dir or %s)", configuration.KeyImportDir)
				}

				return app.pools.ImportFromDir(cmd.Context(), args[0], searchDir)
			}

			pools, err := app.pools.Available(cmd.Context())
			if searchDir != "" {
				pools, err = app.pools.AvailableInDir(cmd.Context(), searchDir)
			}
			if err != nil {
				return err
			}

			if len(pools) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no pools available to import")

				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tID\tHEALTH")
			for _, p := range pools {
				fmt.Fprintf(w, "%s\t%d\t%s\n", p.Name, p.ID, p.Health)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to search for pool devices")

	return cmd
}
