// Package core holds small numeric helpers shared by the dsp and measure
// packages.
package core

import "math"

// RelativeError returns |got-want| / |want|.
// Returns +Inf when want is zero and got is not, and 0 when both are zero.
func RelativeError(got, want float64) float64 {
	diff := math.Abs(got - want)
	if want == 0 {
		if diff == 0 {
			return 0
		}
		return math.Inf(1)
	}

	return diff / math.Abs(want)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// AllFinite reports whether every element of data is finite.
// It returns the index of the first offending element, or -1.
func AllFinite(data []float64) (bool, int) {
	for i, v := range data {
		if !IsFinite(v) {
			return false, i
		}
	}

	return true, -1
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
