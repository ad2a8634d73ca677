package impedance

import (
	"fmt"

	"github.com/cwbudde/algo-rcsim/dsp/core"
)

// DeriveCurrent returns -voltage[i]/impedance for every sample.
//
// The negation is the current-direction convention of the model. It does not
// affect magnitude spectra. impedance must be positive and finite.
func DeriveCurrent(voltage []float64, impedance float64) ([]float64, error) {
	if len(voltage) == 0 {
		return nil, fmt.Errorf("derive current voltage must not be empty")
	}
	if !core.IsFinite(impedance) || impedance <= 0 {
		return nil, degenerate("derive", "impedance must be positive and finite: %v", impedance)
	}

	out := make([]float64, len(voltage))
	for i, v := range voltage {
		out[i] = -v / impedance
	}
	return out, nil
}
