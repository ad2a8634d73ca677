// Package impedance measures the impedance magnitude of a series RC circuit
// two ways and compares them.
//
// The theoretical value follows from the component values ([Theoretical]).
// The empirical value is recovered from simulated signals: a sine voltage is
// synthesized on a grid of 100 samples per period ([Synthesize]), the current
// is derived from it ([DeriveCurrent]), and the ratio of the peak single-sided
// spectral amplitudes of voltage and current is taken. [Compare] runs the
// whole pipeline for one parameter snapshot:
//
//	res, err := impedance.Compare(impedance.Params{
//	    Frequency: 1000, Cycles: 2, Resistance: 100, Capacitance: 100,
//	})
//	if err != nil { ... }
//	fmt.Println(res.Estimate.Theoretical, res.Estimate.Empirical)
//
// Every stage is a pure function of its inputs. Callers that react to
// parameter changes asynchronously can route them through a [Tracker], which
// keeps a single computation in flight per parameter set and discards results
// of superseded submissions. [Sweep] evaluates many drive frequencies
// concurrently.
//
// # Model constants
//
// The reactance term is 1/(f*C) without the 2*pi factor, and nanofarads are
// converted with [NanofaradScale] = 10e-9. Theoretical and empirical values
// share both, so their agreement does not depend on them.
package impedance
