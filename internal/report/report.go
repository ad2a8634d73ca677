// Package report renders impedance comparisons and sweeps for the simrc
// command: aligned text, markdown, JSON, YAML and PNG figures.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-rcsim/measure/impedance"
)

// Format selects a report encoding.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatMarkdown, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// Summary is the scalar part of a comparison.
type Summary struct {
	Frequency     int     `json:"frequency_hz" yaml:"frequency_hz"`
	Cycles        int     `json:"cycles" yaml:"cycles"`
	Resistance    int     `json:"resistance_ohm" yaml:"resistance_ohm"`
	Capacitance   int     `json:"capacitance_nf" yaml:"capacitance_nf"`
	Samples       int     `json:"samples" yaml:"samples"`
	SampleRate    float64 `json:"sample_rate_hz" yaml:"sample_rate_hz"`
	VoltagePeak   float64 `json:"voltage_peak_v" yaml:"voltage_peak_v"`
	CurrentPeak   float64 `json:"current_peak_a" yaml:"current_peak_a"`
	PeakFrequency float64 `json:"peak_frequency_hz" yaml:"peak_frequency_hz"`
	Theoretical   float64 `json:"theoretical_ohm" yaml:"theoretical_ohm"`
	Empirical     float64 `json:"empirical_ohm" yaml:"empirical_ohm"`
	Deviation     float64 `json:"deviation" yaml:"deviation"`
}

// Summarize extracts the scalar values of res.
func Summarize(res *impedance.Result) Summary {
	return Summary{
		Frequency:     res.Params.Frequency,
		Cycles:        res.Params.Cycles,
		Resistance:    res.Params.Resistance,
		Capacitance:   res.Params.Capacitance,
		Samples:       res.Waveform.Len(),
		SampleRate:    res.Waveform.SampleRate,
		VoltagePeak:   res.VoltageSpectrum.Peak,
		CurrentPeak:   res.CurrentSpectrum.Peak,
		PeakFrequency: res.VoltageSpectrum.PeakFrequency(res.Waveform.SampleRate),
		Theoretical:   res.Estimate.Theoretical,
		Empirical:     res.Estimate.Empirical,
		Deviation:     res.Estimate.Deviation(),
	}
}

// SweepRow is one line of a sweep report.
type SweepRow struct {
	Frequency   int     `json:"frequency_hz" yaml:"frequency_hz"`
	Samples     int     `json:"samples" yaml:"samples"`
	Theoretical float64 `json:"theoretical_ohm" yaml:"theoretical_ohm"`
	Empirical   float64 `json:"empirical_ohm" yaml:"empirical_ohm"`
	Deviation   float64 `json:"deviation" yaml:"deviation"`
}

// SweepRows converts sweep points into report rows.
func SweepRows(points []impedance.SweepPoint) []SweepRow {
	rows := make([]SweepRow, len(points))
	for i, pt := range points {
		rows[i] = SweepRow{
			Frequency:   pt.Params.Frequency,
			Samples:     pt.Samples,
			Theoretical: pt.Estimate.Theoretical,
			Empirical:   pt.Estimate.Empirical,
			Deviation:   pt.Estimate.Deviation(),
		}
	}
	return rows
}

// WriteResult renders one comparison in the given format.
func WriteResult(w io.Writer, format Format, res *impedance.Result) error {
	if res == nil {
		return fmt.Errorf("report: nil result")
	}
	s := Summarize(res)

	switch format {
	case FormatText:
		return writeSummaryText(w, s)
	case FormatMarkdown:
		return writeSummaryMarkdown(w, s)
	case FormatJSON:
		return writeJSON(w, s)
	case FormatYAML:
		return writeYAML(w, s)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// WriteSweep renders a sweep in the given format.
func WriteSweep(w io.Writer, format Format, base impedance.Params, points []impedance.SweepPoint) error {
	rows := SweepRows(points)

	switch format {
	case FormatText:
		return writeSweepText(w, rows)
	case FormatMarkdown:
		return writeSweepMarkdown(w, base, rows)
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatYAML:
		return writeYAML(w, rows)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
