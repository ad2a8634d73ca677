package impedance

import (
	"errors"
	"fmt"
)

// DriveAmplitude is the peak voltage of the excitation, half of a 3.3 V scale.
const DriveAmplitude = 3.3 / 2

// Parameter bounds, inclusive.
const (
	MinFrequency   = 1
	MaxFrequency   = 10000
	MinCycles      = 1
	MaxCycles      = 10
	MinResistance  = 1
	MaxResistance  = 10000
	MinCapacitance = 1
	MaxCapacitance = 1000
)

// Params is one snapshot of the circuit and excitation settings.
type Params struct {
	Frequency   int // drive frequency in Hz
	Cycles      int // number of simulated periods
	Resistance  int // ohms
	Capacitance int // nanofarads
}

// DefaultParams returns the lowest setting of every parameter.
func DefaultParams() Params {
	return Params{
		Frequency:   MinFrequency,
		Cycles:      MinCycles,
		Resistance:  MinResistance,
		Capacitance: MinCapacitance,
	}
}

// Validate checks every field against its bounds. All violations are
// reported; each one is a [*BoundsError].
func (p Params) Validate() error {
	var errs []error
	check := func(field string, v, lo, hi int) {
		if v < lo || v > hi {
			errs = append(errs, &BoundsError{Field: field, Value: v, Min: lo, Max: hi})
		}
	}

	check("frequency", p.Frequency, MinFrequency, MaxFrequency)
	check("cycles", p.Cycles, MinCycles, MaxCycles)
	check("resistance", p.Resistance, MinResistance, MaxResistance)
	check("capacitance", p.Capacitance, MinCapacitance, MaxCapacitance)

	return errors.Join(errs...)
}

// String formats the snapshot with units.
func (p Params) String() string {
	return fmt.Sprintf("f=%d Hz cycles=%d R=%d ohm C=%d nF", p.Frequency, p.Cycles, p.Resistance, p.Capacitance)
}

func (p Params) key() string {
	return fmt.Sprintf("%d/%d/%d/%d", p.Frequency, p.Cycles, p.Resistance, p.Capacitance)
}
