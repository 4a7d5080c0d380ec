package commands

import (
	"github.com/desertwitch/zpctl/internal/zpool"
	"github.com/spf13/cobra"
)

//nolint:funlen
func newCreateCommand() *cobra.Command {
	var (
		mirror   bool
		raidz    int
		caches   []string
		logDisks []string
		mount    string
		altRoot  string

		autoExpand  bool
		autoReplace bool
		cacheFile   string
		comment     string
		delegation  bool
		failMode    string
	)

	cmd := &cobra.Command{
		Use:   "create <pool> <disk>...",
		Short: "Create a pool from the given disks",
		Long: "Create a pool from the given disks. Without a grouping flag every disk\n" +
			"becomes its own vdev; --mirror groups all disks into one mirror and\n" +
			"--raidz groups them into a raidz of the given parity.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			name, paths := args[0], args[1:]

			builder := zpool.NewTopologyBuilder()

			disks := make([]zpool.Disk, 0, len(paths))
			for _, path := range paths {
				disk, err := zpool.DetectDisk(path)
				if err != nil {
					return err
				}
				disks = append(disks, disk)
			}

			switch {
			case mirror:
				builder.Vdev(zpool.MirrorVdev(disks...))
			case raidz > 0:
				builder.Vdev(zpool.RaidZVdev(raidz, disks...))
			default:
				for _, disk := range disks {
					builder.Disk(disk)
				}
			}

			for _, path := range caches {
				disk, err := zpool.DetectDisk(path)
				if err != nil {
					return err
				}
				builder.Cache(disk)
			}

			for _, path := range logDisks {
				disk, err := zpool.DetectDisk(path)
				if err != nil {
					return err
				}
				builder.Log(zpool.NakedVdev(disk))
			}

			mode, _ := zpool.ParseFailMode(failMode)

			props := zpool.NewPropertiesWriteBuilder().
				AutoExpand(autoExpand).
				AutoReplace(autoReplace).
				CacheFile(cacheFile).
				Comment(comment).
				Delegation(delegation).
				FailMode(mode).
				Build()

			return app.pools.Create(cmd.Context(), name, builder.Build(), &props, mount, altRoot)
		},
	}

	cmd.Flags().BoolVar(&mirror, "mirror", false, "group all disks into one mirror vdev")
	cmd.Flags().IntVar(&raidz, "raidz", 0, "group all disks into a raidz vdev of this parity (1-3)")
	cmd.Flags().StringSliceVar(&caches, "cache", nil, "cache device path (repeatable)")
	cmd.Flags().StringSliceVar(&logDisks, "log", nil, "intent-log device path (repeatable)")
	cmd.Flags().StringVarP(&mount, "mount", "m", "", "mountpoint for the root dataset")
	cmd.Flags().StringVarP(&altRoot, "altroot", "R", "", "alternate root for the pool")

	cmd.Flags().BoolVar(&autoExpand, "autoexpand", false, "expand the pool on device growth")
	cmd.Flags().BoolVar(&autoReplace, "autoreplace", false, "automatically replace devices")
	cmd.Flags().StringVar(&cacheFile, "cachefile", "", "pool cache file location")
	cmd.Flags().StringVar(&comment, "comment", "", "pool comment")
	cmd.Flags().BoolVar(&delegation, "delegation", true, "allow delegated permissions")
	cmd.Flags().StringVar(&failMode, "failmode", "wait", "failure behavior (wait, continue, panic)")

	return cmd
}
