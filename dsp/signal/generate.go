package signal

import (
	"fmt"
	"math"
)

// Linspace returns n evenly spaced values over [start, stop].
//
// Both endpoints are included, so the spacing is (stop-start)/(n-1) and the
// last value is exactly stop. n == 1 yields []float64{start}.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("linspace samples must be > 0: %d", n)
	}
	if math.IsNaN(start) || math.IsNaN(stop) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("linspace bounds must be finite: [%f, %f]", start, stop)
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out, nil
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out, nil
}

// SineAt evaluates amplitude * sin(freqHz * 2*pi*t) at every time in times.
func SineAt(times []float64, freqHz, amplitude float64) ([]float64, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("sine time grid must not be empty")
	}
	if freqHz <= 0 {
		return nil, fmt.Errorf("sine frequency must be > 0: %f", freqHz)
	}

	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = amplitude * math.Sin(freqHz*(2*math.Pi*t))
	}
	return out, nil
}
