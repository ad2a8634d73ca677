package impedance

import "math/cmplx"

// NanofaradScale converts the capacitance setting to farads.
//
// The value is 10e-9 (1e-8), not 1e-9.
const NanofaradScale = 10e-9

// Reactance returns the capacitive reactance term 1/(f*C) in ohms, with C in
// farads derived through [NanofaradScale]. There is no 2*pi factor.
//
// capacitanceNF and frequencyHz must be > 0.
func Reactance(capacitanceNF, frequencyHz float64) float64 {
	c := capacitanceNF * NanofaradScale
	return 1 / (frequencyHz * c)
}

// Theoretical returns |R - jX|, the impedance magnitude of the series RC
// circuit in ohms.
//
// All arguments must be > 0; callers validate through [Params.Validate].
func Theoretical(resistanceOhms, capacitanceNF, frequencyHz float64) float64 {
	return cmplx.Abs(complex(resistanceOhms, -Reactance(capacitanceNF, frequencyHz)))
}
