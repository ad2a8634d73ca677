package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

func writeSummaryText(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"Frequency", fmt.Sprintf("%d Hz", s.Frequency)},
		{"Cycles", fmt.Sprintf("%d", s.Cycles)},
		{"Resistance", fmt.Sprintf("%d ohm", s.Resistance)},
		{"Capacitance", fmt.Sprintf("%d nF", s.Capacitance)},
		{"Samples", fmt.Sprintf("%d @ %.0f Hz", s.Samples, s.SampleRate)},
		{"Voltage peak", fmt.Sprintf("%.6g V at %.6g Hz", s.VoltagePeak, s.PeakFrequency)},
		{"Current peak", fmt.Sprintf("%.6g A", s.CurrentPeak)},
		{"Expected impedance", fmt.Sprintf("%.6f ohm", s.Theoretical)},
		{"Calculated impedance", fmt.Sprintf("%.6f ohm", s.Empirical)},
		{"Deviation", fmt.Sprintf("%.3e", s.Deviation)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", r.label, r.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeSweepText(w io.Writer, rows []SweepRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frequency [Hz]\tSamples\tExpected [ohm]\tCalculated [ohm]\tDeviation\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--------------\t-------\t--------------\t----------------\t---------\n"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.6f\t%.6f\t%.3e\n",
			r.Frequency, r.Samples, r.Theoretical, r.Empirical, r.Deviation); err != nil {
			return err
		}
	}
	return tw.Flush()
}
