package testutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-rcsim/dsp/core"
)

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and agree element-wise within the absolute tolerance eps. The failure
// names the first offending index and the largest deviation overall.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if floats.EqualApprox(got, want, eps) {
		return
	}
	worst := floats.Distance(got, want, math.Inf(1))
	for i := range got {
		if math.Abs(got[i]-want[i]) > eps {
			t.Fatalf("index %d: got %v, want %v (max deviation %v > eps %v)", i, got[i], want[i], worst, eps)
		}
	}
}

// RequireWithinRelative fails t if got deviates from want by more than the
// fraction rel of |want|. A zero want only accepts an exact zero.
func RequireWithinRelative(t *testing.T, name string, got, want, rel float64) {
	t.Helper()
	if d := core.RelativeError(got, want); d > rel {
		t.Fatalf("%s = %v, want %v (relative error %.3g > %.3g)", name, got, want, d, rel)
	}
}

// RequireFinite fails t at the first NaN or Inf in data.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	if ok, i := core.AllFinite(data); !ok {
		t.Fatalf("index %d: non-finite value %v", i, data[i])
	}
}
