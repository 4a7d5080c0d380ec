package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <pool>",
		Short: "Show the properties of a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			props, err := app.pools.ReadProperties(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "health\t%s\n", props.Health)
			fmt.Fprintf(w, "size\t%s\n", humanize.IBytes(props.Size))
			fmt.Fprintf(w, "allocated\t%s\n", humanize.IBytes(props.Alloc))
			fmt.Fprintf(w, "free\t%s\n", humanize.IBytes(props.Free))
			fmt.Fprintf(w, "capacity\t%d%%\n", props.Capacity)
			fmt.Fprintf(w, "fragmentation\t%d%%\n", props.Fragmentation)
			fmt.Fprintf(w, "dedupratio\t%.2fx\n", props.DedupRatio)
			fmt.Fprintf(w, "guid\t%d\n", props.GUID)
			fmt.Fprintf(w, "readonly\t%t\n", props.ReadOnly)
			fmt.Fprintf(w, "autoexpand\t%t\n", props.AutoExpand)
			fmt.Fprintf(w, "autoreplace\t%t\n", props.AutoReplace)
			fmt.Fprintf(w, "delegation\t%t\n", props.Delegation)
			fmt.Fprintf(w, "failmode\t%s\n", props.FailMode)

			if props.CacheFile != "" {
				fmt.Fprintf(w, "cachefile\t%s\n", props.CacheFile)
			}
			if props.Comment != "" {
				fmt.Fprintf(w, "comment\t%s\n", props.Comment)
			}

			return w.Flush()
		},
	}
}
