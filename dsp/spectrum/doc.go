// Package spectrum turns real-valued time series into amplitude spectra.
//
// [Transform] computes the non-negative half of the DFT with a fast
// transform: algo-fft plans for power-of-two lengths and gonum's
// mixed-radix FFT for every other length, so no zero padding is applied and
// bin k always sits at k*sampleRate/N.
//
// [SingleSided] scales the magnitudes by 2/N, keeps the first N/2 bins and
// reports the peak:
//
//	amp, err := spectrum.SingleSided(voltage)
//	if err != nil { ... }
//	fmt.Println(amp.Peak, amp.PeakBin)
package spectrum
