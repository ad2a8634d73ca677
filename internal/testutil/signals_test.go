package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestDC(t *testing.T) {
	for i, v := range DC(0.5, 4) {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestNaiveDFTImpulseIsFlat(t *testing.T) {
	x := NaiveDFT([]float64{1, 0, 0, 0, 0, 0})
	for k, v := range x {
		if math.Abs(cmplx.Abs(v)-1) > 1e-12 {
			t.Fatalf("|X[%d]| = %v, want 1", k, cmplx.Abs(v))
		}
	}
}

func TestNaiveDFTSineBin(t *testing.T) {
	// 3 cycles in 30 samples puts all energy in bins 3 and 27.
	x := NaiveDFT(DeterministicSine(3, 30, 1, 30))
	if math.Abs(cmplx.Abs(x[3])-15) > 1e-9 {
		t.Fatalf("|X[3]| = %v, want 15", cmplx.Abs(x[3]))
	}
	if cmplx.Abs(x[4]) > 1e-9 {
		t.Fatalf("|X[4]| = %v, want 0", cmplx.Abs(x[4]))
	}
}
