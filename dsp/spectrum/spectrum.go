package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// planes holds the real and imaginary parts of a complex slice in the
// split layout the vecmath kernels take.
type planes struct {
	re, im []float64
}

var planePool = sync.Pool{
	New: func() any { return new(planes) },
}

func resize(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}
	return buf[:n]
}

// Magnitude returns |X[k]| for each bin, computed with the algo-vecmath
// kernel. Only the returned slice is allocated once the pool is warm.
func Magnitude(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}
	out := make([]float64, len(bins))
	magnitudeInto(out, bins)
	return out
}

// magnitudeInto writes |bins[k]| into dst; len(dst) must equal len(bins).
func magnitudeInto(dst []float64, bins []complex128) {
	p := planePool.Get().(*planes)
	defer planePool.Put(p)

	p.re = resize(p.re, len(bins))
	p.im = resize(p.im, len(bins))
	for i, c := range bins {
		p.re[i], p.im[i] = real(c), imag(c)
	}
	vecmath.Magnitude(dst, p.re, p.im)
}
