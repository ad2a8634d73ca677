package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rcsim/internal/testutil"
)

func TestLinspaceEndpoints(t *testing.T) {
	x, err := Linspace(0, 0.002, 200)
	if err != nil {
		t.Fatalf("Linspace() error = %v", err)
	}
	if len(x) != 200 {
		t.Fatalf("len = %d, want 200", len(x))
	}
	if x[0] != 0 {
		t.Fatalf("x[0] = %v, want 0", x[0])
	}
	if x[len(x)-1] != 0.002 {
		t.Fatalf("x[last] = %v, want 0.002", x[len(x)-1])
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			t.Fatalf("not strictly increasing at %d: %v <= %v", i, x[i], x[i-1])
		}
	}
}

func TestLinspaceUniformSpacing(t *testing.T) {
	x, err := Linspace(1, 2, 5)
	if err != nil {
		t.Fatalf("Linspace() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, x, []float64{1, 1.25, 1.5, 1.75, 2}, 1e-15)
}

func TestLinspaceSingleSample(t *testing.T) {
	x, err := Linspace(3, 7, 1)
	if err != nil {
		t.Fatalf("Linspace() error = %v", err)
	}
	if len(x) != 1 || x[0] != 3 {
		t.Fatalf("Linspace(3, 7, 1) = %v, want [3]", x)
	}
}

func TestLinspaceErrors(t *testing.T) {
	if _, err := Linspace(0, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
	if _, err := Linspace(0, math.Inf(1), 4); err == nil {
		t.Fatal("expected error for infinite bound")
	}
	if _, err := Linspace(math.NaN(), 1, 4); err == nil {
		t.Fatal("expected error for NaN bound")
	}
}

func TestSineAtMatchesDeterministicSine(t *testing.T) {
	const (
		freq       = 50.0
		sampleRate = 5000.0
		n          = 100
	)

	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) / sampleRate
	}

	got, err := SineAt(times, freq, 0.5)
	if err != nil {
		t.Fatalf("SineAt() error = %v", err)
	}

	want := testutil.DeterministicSine(freq, sampleRate, 0.5, n)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestSineAtPeak(t *testing.T) {
	// Quarter period of a 1 Hz sine.
	got, err := SineAt([]float64{0, 0.25, 0.5, 0.75}, 1, 1.65)
	if err != nil {
		t.Fatalf("SineAt() error = %v", err)
	}
	want := []float64{0, 1.65, 0, -1.65}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestSineAtErrors(t *testing.T) {
	if _, err := SineAt(nil, 1, 1); err == nil {
		t.Fatal("expected error for empty grid")
	}
	if _, err := SineAt([]float64{0}, 0, 1); err == nil {
		t.Fatal("expected error for zero frequency")
	}
}
