package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/awmpietro/sortlab/internal/app"
	"github.com/awmpietro/sortlab/internal/sorttrace"
	"github.com/awmpietro/sortlab/internal/transport/tracedto"
)

type traceFlags struct {
	algorithm string
	dataset   string
	numbers   []float64
	filter    string
}

func (f *traceFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.algorithm, "algorithm", "a", string(sorttrace.QuickSort), "quicksort, mergesort or bubblesort")
	flags.StringVarP(&f.dataset, "dataset", "d", "", "records or bars (default: bars when --numbers is set)")
	flags.Float64SliceVarP(&f.numbers, "numbers", "n", nil, "numbers to sort instead of the bar dataset")
	flags.StringVarP(&f.filter, "filter", "f", "", `record filter, e.g. "price >= 20 && price < 40"`)
}

func (f *traceFlags) request() app.TraceRequest {
	return app.TraceRequest{
		Dataset:   app.Dataset(f.dataset),
		Algorithm: f.algorithm,
		Numbers:   f.numbers,
		Filter:    f.filter,
	}
}

func newTraceCommand(root *rootOptions) *cobra.Command {
	flags := &traceFlags{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print every step a sort takes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, logger, err := root.service()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			res, err := svc.Trace(flags.request())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(tracedto.NewTraceResponse(res))
			}
			if res.Records != nil {
				printTrace(out, res.Records, sorttrace.DescribeRecord)
			} else {
				printTrace(out, res.Numbers, sorttrace.FormatNumber)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the trace as JSON")
	return cmd
}

func printTrace[T any](w io.Writer, tr *sorttrace.Trace[T], describe func(T) string) {
	for i, step := range tr.Steps {
		fmt.Fprintln(w, formatStep(i, step, describe))
	}
	fmt.Fprintf(w, "%s: %d steps, %d comparisons, %d swaps\n",
		tr.Algorithm.Title(), tr.Len(), tr.Comparisons, tr.Swaps)
}

// formatStep renders one step on a single line, marking each element with its
// role: * sorted, P pivot, ? compared, < > merge halves.
func formatStep[T any](i int, step sorttrace.Step[T], describe func(T) string) string {
	cells := lo.Map(step.Array, func(v T, idx int) string {
		return describe(v) + roleMark(step.RoleOf(idx))
	})
	return fmt.Sprintf("%4d %-14s %s\n     [%s]", i, step.Kind, step.Action, strings.Join(cells, " "))
}

func roleMark(r sorttrace.Role) string {
	switch r {
	case sorttrace.RoleSorted:
		return "*"
	case sorttrace.RolePivot:
		return "P"
	case sorttrace.RoleComparing:
		return "?"
	case sorttrace.RoleLeft:
		return "<"
	case sorttrace.RoleRight:
		return ">"
	}
	return ""
}
