package commands

import (
	"context"

	"github.com/desertwitch/zpctl/internal/ui"
	"github.com/spf13/cobra"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Show a live dashboard of the active pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			uiHandler := ui.NewHandler(app.pools, app.settings.WatchInterval)

			return uiHandler.Launch(ctx, cancel)
		},
	}
}
