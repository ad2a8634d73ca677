// Package testutil holds reference signals and tolerance assertions shared
// by the package tests.
package testutil

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
)

// DeterministicSine returns length samples of amplitude*sin(2*pi*freqHz*t)
// taken at sampleRate, starting at t=0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	w := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(w*float64(i))
	}
	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude). The
// same seed always yields the same samples.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewPCG(uint64(seed), 0x5eed))
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}
	return out
}

// DC returns length copies of value.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// NaiveDFT is the O(N^2) textbook DFT of x, used as ground truth for the
// fast transforms.
func NaiveDFT(x []float64) []complex128 {
	n := float64(len(x))
	out := make([]complex128, len(x))
	for k := range out {
		var sum complex128
		for i, v := range x {
			sum += complex(v, 0) * cmplx.Rect(1, -2*math.Pi*float64(k)*float64(i)/n)
		}
		out[k] = sum
	}
	return out
}
