package impedance

import (
	"errors"
	"fmt"
)

// Errors returned by the impedance pipeline.
var (
	// ErrOutOfBounds is wrapped by every [*BoundsError].
	ErrOutOfBounds = errors.New("impedance: parameter out of bounds")
	// ErrDegenerate is wrapped by every [*ConfigError].
	ErrDegenerate = errors.New("impedance: degenerate configuration")
	// ErrSuperseded is returned by [Tracker.Submit] when a newer submission
	// arrived before the computation finished.
	ErrSuperseded = errors.New("impedance: superseded by newer parameters")
	// ErrNoResult is returned by [Tracker.Latest] before any submission completed.
	ErrNoResult = errors.New("impedance: no result available")
)

// BoundsError reports a parameter outside its declared range.
type BoundsError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("impedance: %s=%d outside [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// Unwrap returns [ErrOutOfBounds].
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// ConfigError reports a parameter combination that drives a pipeline stage
// into a degenerate state, such as too few samples or a zero peak.
type ConfigError struct {
	Stage  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("impedance: %s: %s", e.Stage, e.Reason)
}

// Unwrap returns [ErrDegenerate].
func (e *ConfigError) Unwrap() error { return ErrDegenerate }

func degenerate(stage, format string, args ...any) error {
	return &ConfigError{Stage: stage, Reason: fmt.Sprintf(format, args...)}
}
