package impedance

import (
	"github.com/cwbudde/algo-rcsim/dsp/core"
	"github.com/cwbudde/algo-rcsim/dsp/spectrum"
)

// Estimate holds both impedance magnitudes in ohms.
type Estimate struct {
	Theoretical float64
	Empirical   float64
}

// Deviation returns |Empirical-Theoretical| / Theoretical.
func (e Estimate) Deviation() float64 {
	return core.RelativeError(e.Empirical, e.Theoretical)
}

// Result is the estimate together with every intermediate artifact of the
// pipeline run that produced it.
type Result struct {
	Params          Params
	Estimate        Estimate
	Waveform        Waveform
	Current         []float64 // amperes, aligned with Waveform.Times
	VoltageSpectrum spectrum.Amplitude
	CurrentSpectrum spectrum.Amplitude
}

// Compare validates p and runs the full pipeline:
//
//  1. theoretical impedance from the component values
//  2. voltage synthesis
//  3. current derivation with the theoretical impedance
//  4. single-sided spectra of voltage and current
//  5. empirical impedance = voltage peak / current peak
//
// Out-of-range parameters fail with a [*BoundsError], degenerate stages with
// a [*ConfigError]. No partial result is returned on failure.
func Compare(p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	theoretical := Theoretical(float64(p.Resistance), float64(p.Capacitance), float64(p.Frequency))
	if !core.IsFinite(theoretical) || theoretical <= 0 {
		return nil, degenerate("model", "theoretical impedance is %v", theoretical)
	}

	wave, err := Synthesize(p.Frequency, p.Cycles, DriveAmplitude)
	if err != nil {
		return nil, err
	}

	current, err := DeriveCurrent(wave.Voltage, theoretical)
	if err != nil {
		return nil, err
	}

	vSpec, err := spectrum.SingleSided(wave.Voltage)
	if err != nil {
		return nil, err
	}

	iSpec, err := spectrum.SingleSided(current)
	if err != nil {
		return nil, err
	}

	if iSpec.Peak == 0 {
		return nil, degenerate("compare", "current spectrum peak is zero")
	}

	empirical := vSpec.Peak / iSpec.Peak
	if !core.IsFinite(empirical) {
		return nil, degenerate("compare", "empirical impedance is %v", empirical)
	}

	return &Result{
		Params: p,
		Estimate: Estimate{
			Theoretical: theoretical,
			Empirical:   empirical,
		},
		Waveform:        wave,
		Current:         current,
		VoltageSpectrum: vSpec,
		CurrentSpectrum: iSpec,
	}, nil
}
