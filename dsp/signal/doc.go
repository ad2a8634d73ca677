// Package signal provides deterministic excitation signals sampled on
// explicit time grids.
//
// Grids are built with [Linspace], which includes both endpoints, and
// signals are evaluated on them with [SineAt]:
//
//	t, _ := signal.Linspace(0, 0.002, 200)
//	v, _ := signal.SineAt(t, 1000, 1.65)
package signal
