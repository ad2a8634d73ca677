package impedance

import (
	"fmt"

	"github.com/cwbudde/algo-rcsim/dsp/signal"
)

// SamplesPerCycle ties the sample rate to the drive frequency.
const SamplesPerCycle = 100

// minSamples is the shortest series with a non-empty single-sided spectrum.
const minSamples = 2

// Waveform is the synthesized excitation.
type Waveform struct {
	Times      []float64 // seconds, uniform, Times[0] = 0, Times[n-1] = Duration
	Voltage    []float64 // volts
	SampleRate float64   // Hz
	Duration   float64   // seconds
}

// Len returns the number of samples.
func (w Waveform) Len() int { return len(w.Times) }

// SampleCount returns floor(cycles/frequency * frequency*SamplesPerCycle).
//
// The product is evaluated in floating point and truncated, so some
// combinations yield one sample less than cycles*SamplesPerCycle.
func SampleCount(frequency, cycles int) int {
	return sampleCount(frequency, cycles, SamplesPerCycle)
}

func sampleCount(frequency, cycles, perCycle int) int {
	duration := float64(cycles) / float64(frequency)
	sampleRate := float64(frequency * perCycle)
	return int(duration * sampleRate)
}

// Synthesize builds the sine excitation for cycles periods of frequency.
//
// The time grid spans [0, cycles/frequency] with both endpoints included and
// SampleCount points. Fewer than 2 samples is reported as a [*ConfigError].
func Synthesize(frequency, cycles int, amplitude float64) (Waveform, error) {
	return synthesize(frequency, cycles, SamplesPerCycle, amplitude)
}

func synthesize(frequency, cycles, perCycle int, amplitude float64) (Waveform, error) {
	if frequency <= 0 {
		return Waveform{}, fmt.Errorf("synthesize frequency must be > 0: %d", frequency)
	}
	if cycles <= 0 {
		return Waveform{}, fmt.Errorf("synthesize cycles must be > 0: %d", cycles)
	}
	if amplitude <= 0 {
		return Waveform{}, fmt.Errorf("synthesize amplitude must be > 0: %f", amplitude)
	}

	duration := float64(cycles) / float64(frequency)
	sampleRate := float64(frequency * perCycle)

	n := sampleCount(frequency, cycles, perCycle)
	if n < minSamples {
		return Waveform{}, degenerate("synthesize", "%d samples for %d cycles at %d Hz, need at least %d",
			n, cycles, frequency, minSamples)
	}

	times, err := signal.Linspace(0, duration, n)
	if err != nil {
		return Waveform{}, err
	}

	voltage, err := signal.SineAt(times, float64(frequency), amplitude)
	if err != nil {
		return Waveform{}, err
	}

	return Waveform{
		Times:      times,
		Voltage:    voltage,
		SampleRate: sampleRate,
		Duration:   duration,
	}, nil
}
