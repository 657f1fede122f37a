package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/awmpietro/sortlab/internal/app"
	"github.com/awmpietro/sortlab/internal/playback"
	"github.com/awmpietro/sortlab/internal/sorttrace"
)

func newPlayCommand(root *rootOptions) *cobra.Command {
	flags := &traceFlags{}
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Replay a trace one step per tick",
		Long:  "Replay a trace one step per tick. Records default to 1.5s per step, bars to 800ms. Ctrl-C stops playback.",
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
			if res.Dataset == app.DatasetBars {
				err = play(cmd.Context(), out, res.Numbers, sorttrace.FormatNumber, intervalOr(interval, playback.BarInterval))
			} else {
				err = play(cmd.Context(), out, res.Records, sorttrace.DescribeRecord, intervalOr(interval, playback.RecordInterval))
			}
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(out, "playback stopped")
				return nil
			}
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().DurationVar(&interval, "interval", 0, "time between steps")
	return cmd
}

func play[T any](ctx context.Context, w io.Writer, tr *sorttrace.Trace[T], describe func(T) string, interval time.Duration) error {
	p := playback.NewPlayer(tr)
	render := func(pos int, step sorttrace.Step[T]) error {
		_, err := fmt.Fprintln(w, formatStep(pos, step, describe))
		return err
	}
	if err := render(p.Position(), p.Current()); err != nil {
		return err
	}
	return p.Play(ctx, interval, render)
}

func intervalOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
