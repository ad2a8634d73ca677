package spectrum

import (
	"testing"

	"github.com/cwbudde/algo-rcsim/internal/testutil"
)

func BenchmarkMagnitude(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"1K", 1024},
		{"16K", 16384},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			inData := make([]complex128, testCase.size)
			for i := range inData {
				inData[i] = complex(float64(i)/10.0, float64(testCase.size-i)/10.0)
			}

			b.SetBytes(int64(testCase.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_ = Magnitude(inData)
			}
		})
	}
}

func BenchmarkSingleSided(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"200", 200},
		{"1K-pow2", 1024},
		{"100K", 100000},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			x := testutil.DeterministicSine(1000, 100000, 1.65, testCase.size)

			b.SetBytes(int64(testCase.size * 8))
			b.ResetTimer()

			for range b.N {
				if _, err := SingleSided(x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
