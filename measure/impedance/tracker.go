package impedance

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Tracker serializes parameter changes that arrive concurrently.
//
// Identical parameter snapshots in flight share one computation. A result is
// published only if no newer submission was made while it was computed;
// otherwise the caller gets [ErrSuperseded] and the result is dropped.
type Tracker struct {
	group singleflight.Group
	gen   atomic.Uint64

	mu        sync.RWMutex
	latest    *Result
	latestErr error
	published uint64

	logger  zerolog.Logger
	compute func(Params) (*Result, error)
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithLogger sets the logger used for superseded and failed runs.
func WithLogger(logger zerolog.Logger) TrackerOption {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// NewTracker creates a Tracker backed by [Compare].
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		logger:  zerolog.Nop(),
		compute: Compare,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Submit computes the comparison for p and publishes it as the latest state.
// It is [Tracker.Begin] followed by [Ticket.Wait].
//
// A ctx that is already done returns ctx.Err() without counting as a
// submission, so it never supersedes a run in flight.
func (t *Tracker) Submit(ctx context.Context, p Params) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.Begin(p).Wait(ctx)
}

// Ticket is a submission whose place in the order of changes is fixed.
type Ticket struct {
	tracker *Tracker
	gen     uint64
	params  Params
}

// Begin registers p as the newest change and returns its ticket. Every
// earlier ticket that has not published yet is superseded from here on.
//
// Callers that compute in the background call Begin in the order changes
// arrive and Wait in their own goroutines.
func (t *Tracker) Begin(p Params) *Ticket {
	return &Ticket{tracker: t, gen: t.gen.Add(1), params: p}
}

// Generation returns the position of the ticket in submission order,
// starting at 1.
func (k *Ticket) Generation() uint64 { return k.gen }

// Wait runs the comparison and publishes it unless a newer ticket was
// issued in the meantime.
//
// It returns [ErrSuperseded] when another Begin happened after this ticket
// before the computation finished, and ctx.Err() when ctx ends first.
// Validation and pipeline failures are published too, so [Tracker.Latest]
// never shows numbers for parameters that were replaced by invalid ones.
func (k *Ticket) Wait(ctx context.Context) (*Result, error) {
	t, p := k.tracker, k.params
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch := t.group.DoChan(p.key(), func() (any, error) {
		return t.compute(p)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		var res *Result
		if r.Err == nil {
			res = r.Val.(*Result)
		}
		if !t.publish(k.gen, res, r.Err) {
			t.logger.Debug().
				Uint64("generation", k.gen).
				Str("params", p.String()).
				Msg("discarding superseded impedance run")
			return nil, ErrSuperseded
		}
		if r.Err != nil {
			t.logger.Debug().Err(r.Err).Str("params", p.String()).Msg("impedance run failed")
			return nil, r.Err
		}
		return res, nil
	}
}

func (t *Tracker) publish(gen uint64, res *Result, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.gen.Load() || gen <= t.published {
		return false
	}
	t.latest = res
	t.latestErr = err
	t.published = gen
	return true
}

// Latest returns the most recently published result, or the error of the
// most recent submission if it failed. Before the first publication it
// returns [ErrNoResult].
func (t *Tracker) Latest() (*Result, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.published == 0 {
		return nil, ErrNoResult
	}
	return t.latest, t.latestErr
}

// Generation returns the number of tickets issued so far.
func (t *Tracker) Generation() uint64 {
	return t.gen.Load()
}
