package impedance

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestFrequencyRange(t *testing.T) {
	got, err := FrequencyRange(100, 500, 100)
	if err != nil {
		t.Fatalf("FrequencyRange error: %v", err)
	}
	want := []int{100, 200, 300, 400, 500}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	got, err = FrequencyRange(1, 10, 4)
	if err != nil {
		t.Fatalf("FrequencyRange error: %v", err)
	}
	if len(got) != 3 || got[2] != 9 {
		t.Fatalf("FrequencyRange(1, 10, 4) = %v, want [1 5 9]", got)
	}
}

func TestFrequencyRangeErrors(t *testing.T) {
	if _, err := FrequencyRange(1, 10, 0); err == nil {
		t.Fatal("expected error for zero step")
	}
	if _, err := FrequencyRange(10, 1, 1); err == nil {
		t.Fatal("expected error for reversed range")
	}
}

func TestFrequencyRangeBounds(t *testing.T) {
	tests := []struct {
		name       string
		from, to   int
		step       int
		violations int
	}{
		{"huge end", 1, 2000000000, 1, 1},
		{"end near MaxInt", 1, math.MaxInt, 1 << 20, 1},
		{"zero start", 0, 100, 10, 1},
		{"both ends", -5, MaxFrequency + 1, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FrequencyRange(tt.from, tt.to, tt.step)
			if got != nil {
				t.Fatalf("FrequencyRange returned %d frequencies, want none", len(got))
			}
			if !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("error = %v, want ErrOutOfBounds", err)
			}

			var be *BoundsError
			if !errors.As(err, &be) || be.Min != MinFrequency || be.Max != MaxFrequency {
				t.Fatalf("error = %v, want *BoundsError over [%d, %d]", err, MinFrequency, MaxFrequency)
			}

			joined, ok := err.(interface{ Unwrap() []error })
			if !ok {
				t.Fatalf("error %T does not expose its violations", err)
			}
			if n := len(joined.Unwrap()); n != tt.violations {
				t.Fatalf("violations = %d, want %d", n, tt.violations)
			}
		})
	}
}

func TestFrequencyRangeFullSpan(t *testing.T) {
	got, err := FrequencyRange(MinFrequency, MaxFrequency, MaxFrequency)
	if err != nil {
		t.Fatalf("FrequencyRange error: %v", err)
	}
	if len(got) != 1 || got[0] != MinFrequency {
		t.Fatalf("FrequencyRange(1, 10000, 10000) = %v, want [1]", got)
	}

	got, err = FrequencyRange(MinFrequency, MaxFrequency, math.MaxInt)
	if err != nil {
		t.Fatalf("FrequencyRange error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("FrequencyRange with step MaxInt = %v, want one frequency", got)
	}

	got, err = FrequencyRange(MaxFrequency, MaxFrequency, 1)
	if err != nil {
		t.Fatalf("FrequencyRange error: %v", err)
	}
	if len(got) != 1 || got[0] != MaxFrequency {
		t.Fatalf("FrequencyRange(10000, 10000, 1) = %v, want [10000]", got)
	}
}

func TestSweepOrderAndAgreement(t *testing.T) {
	base := Params{Frequency: 1, Cycles: 2, Resistance: 470, Capacitance: 220}
	freqs := []int{5000, 10, 1000, 1, 250}

	points, err := Sweep(context.Background(), base, freqs, WithConcurrency(2))
	if err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	if len(points) != len(freqs) {
		t.Fatalf("points = %d, want %d", len(points), len(freqs))
	}

	for i, pt := range points {
		if pt.Params.Frequency != freqs[i] {
			t.Fatalf("point %d frequency = %d, want %d", i, pt.Params.Frequency, freqs[i])
		}
		if pt.Params.Resistance != base.Resistance || pt.Params.Capacitance != base.Capacitance {
			t.Fatalf("point %d lost base params: %+v", i, pt.Params)
		}
		if pt.Estimate.Deviation() > 0.01 {
			t.Fatalf("point %d deviation = %g", i, pt.Estimate.Deviation())
		}
		if pt.PeakBin != base.Cycles {
			t.Fatalf("point %d peak bin = %d, want %d", i, pt.PeakBin, base.Cycles)
		}
		if pt.Samples < 2 {
			t.Fatalf("point %d samples = %d", i, pt.Samples)
		}
	}
}

func TestSweepImpedanceFallsWithFrequency(t *testing.T) {
	base := Params{Frequency: 1, Cycles: 1, Resistance: 10, Capacitance: 1000}
	freqs, err := FrequencyRange(100, 1000, 100)
	if err != nil {
		t.Fatalf("FrequencyRange error: %v", err)
	}

	points, err := Sweep(context.Background(), base, freqs)
	if err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	for i := 1; i < len(points); i++ {
		if !(points[i].Estimate.Theoretical < points[i-1].Estimate.Theoretical) {
			t.Fatalf("theoretical impedance not decreasing at %d Hz", points[i].Params.Frequency)
		}
	}
}

func TestSweepPropagatesErrors(t *testing.T) {
	base := DefaultParams()
	_, err := Sweep(context.Background(), base, []int{10, 20000, 30})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Sweep error = %v, want ErrOutOfBounds", err)
	}
}

func TestSweepEmpty(t *testing.T) {
	if _, err := Sweep(context.Background(), DefaultParams(), nil); err == nil {
		t.Fatal("expected error for empty sweep")
	}
}

func TestSweepCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sweep(ctx, DefaultParams(), []int{1, 2, 3})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Sweep error = %v, want context.Canceled", err)
	}
}
