package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-rcsim/dsp/core"
)

// Backend selects the FFT implementation used by [TransformWith].
type Backend int

const (
	// BackendAuto uses algo-fft for power-of-two lengths and gonum otherwise.
	BackendAuto Backend = iota
	// BackendAlgoFFT forces an algo-fft plan. The length must be a power of two.
	BackendAlgoFFT
	// BackendGonum forces gonum's mixed-radix real FFT.
	BackendGonum
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendAlgoFFT:
		return "algo-fft"
	case BackendGonum:
		return "gonum"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Transform returns DFT bins 0..N/2 (inclusive) of the real series.
func Transform(series []float64) ([]complex128, error) {
	return TransformWith(BackendAuto, series)
}

// TransformWith is [Transform] with an explicit backend.
func TransformWith(backend Backend, series []float64) ([]complex128, error) {
	n := len(series)
	if n == 0 {
		return nil, fmt.Errorf("transform input must not be empty")
	}

	switch backend {
	case BackendAuto:
		if autoBackend(n) == BackendAlgoFFT {
			return transformAlgoFFT(series)
		}
		return transformGonum(series), nil
	case BackendAlgoFFT:
		if !core.IsPowerOf2(n) {
			return nil, fmt.Errorf("algo-fft transform length must be a power of two: %d", n)
		}
		return transformAlgoFFT(series)
	case BackendGonum:
		return transformGonum(series), nil
	default:
		return nil, fmt.Errorf("unknown transform backend: %d", int(backend))
	}
}

// autoBackend picks the backend BackendAuto uses for length n.
//
// algo-fft builds plans for some other lengths too (200, 1000), but their
// output does not match the DFT, so only powers of two go there.
func autoBackend(n int) Backend {
	if core.IsPowerOf2(n) {
		return BackendAlgoFFT
	}
	return BackendGonum
}

func transformAlgoFFT(series []float64) ([]complex128, error) {
	n := len(series)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("algo-fft plan of size %d: %w", n, err)
	}

	in := make([]complex128, n)
	for i, v := range series {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("algo-fft forward of size %d: %w", n, err)
	}

	return out[:n/2+1], nil
}

func transformGonum(series []float64) []complex128 {
	return fourier.NewFFT(len(series)).Coefficients(nil, series)
}
