package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-rcsim/internal/report"
	"github.com/cwbudde/algo-rcsim/measure/impedance"
)

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare theoretical and spectral impedance for one parameter set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCompare()
		},
	}
	addParamFlags(cmd.Flags())
	cmd.Flags().String("plot-dir", "", "write waveforms.png and spectra.png into this directory")
	return cmd
}

func (a *app) runCompare() error {
	res, err := impedance.Compare(a.cfg.Params)
	if err != nil {
		return err
	}

	a.log.Debug().
		Int("samples", res.Waveform.Len()).
		Float64("voltage_peak", res.VoltageSpectrum.Peak).
		Float64("current_peak", res.CurrentSpectrum.Peak).
		Msg("pipeline finished")

	if err := report.WriteResult(a.out, a.format, res); err != nil {
		return err
	}

	if a.cfg.PlotDir == "" {
		return nil
	}
	paths, err := report.WritePlots(a.cfg.PlotDir, res)
	if err != nil {
		return err
	}
	a.log.Info().Strs("files", paths).Msg("plots written")
	return nil
}
