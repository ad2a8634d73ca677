package spectrum

import (
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}
	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}
	if math.Abs(mag[1]-math.Sqrt2) > 1e-12 {
		t.Fatalf("Magnitude[1]=%f want=%f", mag[1], math.Sqrt2)
	}
	if mag[2] != 0 {
		t.Fatalf("Magnitude[2]=%f want=0", mag[2])
	}
}

func TestMagnitudeEmpty(t *testing.T) {
	if got := Magnitude(nil); got != nil {
		t.Fatalf("Magnitude(nil) = %v, want nil", got)
	}
}

func TestMagnitudeIntoReusesPlanes(t *testing.T) {
	bins := []complex128{3 + 4i, 0 - 2i, -6 + 8i}
	want := []float64{5, 2, 10}

	for round := range 3 {
		dst := make([]float64, len(bins))
		magnitudeInto(dst, bins)
		for i := range want {
			if math.Abs(dst[i]-want[i]) > 1e-12 {
				t.Fatalf("round %d: dst[%d]=%f want=%f", round, i, dst[i], want[i])
			}
		}
	}
}

func TestMagnitudeReusesPool(t *testing.T) {
	big := make([]complex128, 512)
	for i := range big {
		big[i] = complex(float64(i), 0)
	}
	_ = Magnitude(big)

	small := Magnitude([]complex128{0 + 1i})
	if len(small) != 1 || math.Abs(small[0]-1) > 1e-12 {
		t.Fatalf("Magnitude after pooled reuse = %v, want [1]", small)
	}
}
