package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Amplitude is a single-sided amplitude spectrum of a real series.
type Amplitude struct {
	// Bins holds 2*|X[k]|/N for k in [0, N/2).
	Bins []float64
	// Peak is the largest value in Bins.
	Peak float64
	// PeakBin is the index of Peak. Ties resolve to the lowest bin.
	PeakBin int
	// N is the length of the source series.
	N int
}

// SingleSided computes the single-sided amplitude spectrum of series and
// its peak. The series must hold at least 2 samples.
//
// Each DFT magnitude is scaled by 2/N, which recovers the amplitude of a
// sinusoid that completes an integer number of cycles in the series. Only
// the first N/2 bins are kept; for real input the upper half mirrors them.
func SingleSided(series []float64) (Amplitude, error) {
	n := len(series)
	if n < 2 {
		return Amplitude{}, fmt.Errorf("single-sided spectrum requires at least 2 samples: %d", n)
	}

	bins, err := Transform(series)
	if err != nil {
		return Amplitude{}, err
	}

	mag := Magnitude(bins[:n/2])
	vecmath.ScaleBlock(mag, mag, 2/float64(n))

	peakBin := floats.MaxIdx(mag)
	return Amplitude{
		Bins:    mag,
		Peak:    mag[peakBin],
		PeakBin: peakBin,
		N:       n,
	}, nil
}

// BinFrequency returns the frequency in Hz represented by bin at sampleRate.
func (a Amplitude) BinFrequency(bin int, sampleRate float64) float64 {
	if a.N == 0 {
		return 0
	}
	return float64(bin) * sampleRate / float64(a.N)
}

// Frequencies returns the frequency axis in Hz matching Bins.
func (a Amplitude) Frequencies(sampleRate float64) []float64 {
	out := make([]float64, len(a.Bins))
	for i := range out {
		out[i] = a.BinFrequency(i, sampleRate)
	}
	return out
}

// PeakFrequency returns the frequency in Hz of the peak bin.
func (a Amplitude) PeakFrequency(sampleRate float64) float64 {
	return a.BinFrequency(a.PeakBin, sampleRate)
}
