// Package commands wires the zpctl command tree: each subcommand drives the
// guarded pool operations through the subprocess backend.
package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	configPath string
	cmdPath    string
)

// Execute runs the root command against the given context.
func Execute(ctx context.Context, version string) error {
	rootCmd := newRootCommand(version)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("Command failed.", "err", err)

		return err
	}

	return nil
}

func newRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "zpctl",
		Short:         "zpctl - storage pool lifecycle management",
		Long:          "zpctl manages ZFS storage pools through the zpool tool:\nlifecycle operations, property management and a live status dashboard.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "/etc/zpctl.env", "configuration file path")
	rootCmd.PersistentFlags().StringVar(&cmdPath, "zpool-cmd", "", "override the zpool executable")

	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newStatusCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newCreateCommand())
	rootCmd.AddCommand(newDestroyCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newGetCommand())
	rootCmd.AddCommand(newSetCommand())

	return rootCmd
}
