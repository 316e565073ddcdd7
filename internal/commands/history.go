package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mileagelog/mileagelog/internal/runlog"
)

func newHistoryCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the runs recorded with reconcile --history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := runlog.Read(file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "No runs recorded in %s\n", file)
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tRUN\tTRIPS\tMILES\tTOLLS\tTOTAL\tINPUTS")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s %s\n",
					e.Timestamp.Local().Format(time.DateTime), e.RunID, e.TripCount,
					e.TotalMiles, e.TotalTolls, e.GrandTotal, e.Trips, e.Tolls)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "history file written by reconcile --history (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
