package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-rcsim/internal/report"
	"github.com/cwbudde/algo-rcsim/measure/impedance"
)

func newSweepCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare impedances over a range of drive frequencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSweep(cmd)
		},
	}
	addParamFlags(cmd.Flags())
	cmd.Flags().Int("from", 100, "first frequency in Hz")
	cmd.Flags().Int("to", 10000, "last frequency in Hz (inclusive)")
	cmd.Flags().Int("step", 100, "frequency step in Hz")
	cmd.Flags().Int("concurrency", 0, "parallel computations (default: number of CPUs)")
	return cmd
}

func (a *app) runSweep(cmd *cobra.Command) error {
	s := a.cfg.Sweep
	freqs, err := impedance.FrequencyRange(s.From, s.To, s.Step)
	if err != nil {
		return err
	}

	start := time.Now()
	points, err := impedance.Sweep(cmd.Context(), a.cfg.Params, freqs,
		impedance.WithConcurrency(a.cfg.Concurrency))
	if err != nil {
		return err
	}

	a.log.Info().
		Int("points", len(points)).
		Dur("elapsed", time.Since(start)).
		Msg("sweep finished")

	return report.WriteSweep(a.out, a.format, a.cfg.Params, points)
}
