package impedance

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SweepPoint is the estimate for one drive frequency of a sweep.
type SweepPoint struct {
	Params   Params
	Estimate Estimate
	Samples  int
	PeakBin  int
}

type sweepConfig struct {
	concurrency int
}

// SweepOption configures [Sweep].
type SweepOption func(*sweepConfig)

// WithConcurrency bounds the number of frequencies computed at once.
// Values <= 0 keep the default of runtime.NumCPU().
func WithConcurrency(n int) SweepOption {
	return func(c *sweepConfig) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// FrequencyRange returns from, from+step, ... up to and including to.
//
// Both ends must lie in [MinFrequency, MaxFrequency]; violations are
// reported as [*BoundsError], joined when both ends are out of range.
func FrequencyRange(from, to, step int) ([]int, error) {
	var errs []error
	for _, end := range []struct {
		field string
		value int
	}{{"sweep from", from}, {"sweep to", to}} {
		if end.value < MinFrequency || end.value > MaxFrequency {
			errs = append(errs, &BoundsError{Field: end.field, Value: end.value, Min: MinFrequency, Max: MaxFrequency})
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if step <= 0 {
		return nil, fmt.Errorf("sweep step must be > 0: %d", step)
	}
	if from > to {
		return nil, fmt.Errorf("sweep start must be <= end: %d > %d", from, to)
	}

	out := make([]int, 0, (to-from)/step+1)
	for f := from; ; f += step {
		out = append(out, f)
		if to-f < step {
			return out, nil
		}
	}
}

// Sweep runs [Compare] for base with its frequency replaced by each entry of
// freqs. Points are returned in the order of freqs. The first failure cancels
// the remaining work and is returned.
func Sweep(ctx context.Context, base Params, freqs []int, opts ...SweepOption) ([]SweepPoint, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("sweep requires at least one frequency")
	}

	cfg := sweepConfig{concurrency: runtime.NumCPU()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	points := make([]SweepPoint, len(freqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)

	for i, f := range freqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p := base
			p.Frequency = f
			res, err := Compare(p)
			if err != nil {
				return fmt.Errorf("sweep at %d Hz: %w", f, err)
			}

			points[i] = SweepPoint{
				Params:   p,
				Estimate: res.Estimate,
				Samples:  res.Waveform.Len(),
				PeakBin:  res.VoltageSpectrum.PeakBin,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
