package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newDOTCommand(root *rootOptions) *cobra.Command {
	flags := &traceFlags{}
	var output string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export the recursion tree of a trace as Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, logger, err := root.service()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			dot, err := svc.DOT(flags.request())
			if err != nil {
				return err
			}
			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), dot)
				return err
			}
			return os.WriteFile(output, []byte(dot), 0o644)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}
