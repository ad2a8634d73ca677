package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rcsim/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleSingleSided() {
	// Two cycles of a 1.65 V, 1 kHz sine at 100 kHz.
	x := make([]float64, 200)
	for i := range x {
		x[i] = 1.65 * math.Sin(2*math.Pi*1000*float64(i)/100000)
	}

	amp, err := spectrum.SingleSided(x)
	if err != nil {
		panic(err)
	}
	fmt.Printf("bins=%d peak=%.3f at %.0f Hz\n", len(amp.Bins), amp.Peak, amp.PeakFrequency(100000))
	// Output:
	// bins=100 peak=1.650 at 1000 Hz
}
