package commands

import (
	"fmt"
	"log/slog"

	"github.com/desertwitch/zpctl/internal/zpool"
	"github.com/spf13/cobra"
)

//nolint:funlen
func newSetCommand() *cobra.Command {
	var (
		autoExpand  bool
		autoReplace bool
		cacheFile   string
		comment     string
		delegation  bool
		failMode    string
	)

	cmd := &cobra.Command{
		Use:   "set <pool>",
		Short: "Update the properties of a pool",
		Long: "Update the properties of a pool. Only flags given on the command line\n" +
			"are changed; everything else keeps its current value. One set call is\n" +
			"issued per attribute that actually differs.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			name := args[0]

			current, err := app.pools.ReadProperties(cmd.Context(), name)
			if err != nil {
				return err
			}

			builder := zpool.FromProperties(current)

			if cmd.Flags().Changed("autoexpand") {
				builder.AutoExpand(autoExpand)
			}
			if cmd.Flags().Changed("autoreplace") {
				builder.AutoReplace(autoReplace)
			}
			if cmd.Flags().Changed("cachefile") {
				builder.CacheFile(cacheFile)
			}
			if cmd.Flags().Changed("comment") {
				builder.Comment(comment)
			}
			if cmd.Flags().Changed("delegation") {
				builder.Delegation(delegation)
			}
			if cmd.Flags().Changed("failmode") {
				mode, ok := zpool.ParseFailMode(failMode)
				if !ok {
					return fmt.Errorf("invalid failmode: %q", failMode)
				}
				builder.FailMode(mode)
			}

			updated, err := app.pools.UpdateProperties(cmd.Context(), name, builder.Build())
			if err != nil {
				return err
			}

			slog.Info("Pool properties updated.",
				"pool", name,
				"failmode", updated.FailMode.String(),
				"autoexpand", updated.AutoExpand,
				"autoreplace", updated.AutoReplace,
				"delegation", updated.Delegation,
			)

			return nil
		},
	}

	cmd.Flags().BoolVar(&autoExpand, "autoexpand", false, "expand the pool on device growth")
	cmd.Flags().BoolVar(&autoReplace, "autoreplace", false, "automatically replace devices")
	cmd.Flags().StringVar(&cacheFile, "cachefile", "", "pool cache file location")
	cmd.Flags().StringVar(&comment, "comment", "", "pool comment (empty clears it)")
	cmd.Flags().BoolVar(&delegation, "delegation", true, "allow delegated permissions")
	cmd.Flags().StringVar(&failMode, "failmode", "wait", "failure behavior (wait, continue, panic)")

	return cmd
}
