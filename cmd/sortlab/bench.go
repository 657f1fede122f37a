package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newBenchCommand(root *rootOptions) *cobra.Command {
	var size, reps int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time quicksort against merge sort on a cycled fish catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, logger, err := root.service()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			results, err := svc.Benchmark(cmd.Context(), size, reps)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ALGORITHM\tN\tRUNS\tAVG ms\tMIN ms\tMAX ms\tCOMPLEXITY\t")
			for _, r := range results {
				name := r.Name
				if r.Winner {
					name += " (winner)"
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%.3f\t%.3f\t%.3f\t%s\t\n",
					name, r.N, r.Runs, r.AverageMs, r.MinMs, r.MaxMs, r.Complexity)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&size, "size", "s", 1000, "number of records")
	cmd.Flags().IntVarP(&reps, "reps", "r", 0, "repetitions per algorithm (default from config)")
	return cmd
}
