package commands

import (
	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "export <pool>",
		Short: "Export a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			return app.pools.Export(cmd.Context(), args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "forcibly unmount all datasets")

	return cmd
}
