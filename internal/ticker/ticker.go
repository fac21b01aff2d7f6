package ticker

import (
	"context"
	"time"

	"github.com/jengzang/vacances-backend-go/internal/models"
	"github.com/jengzang/vacances-backend-go/internal/vacation"
)

// DefaultInterval is the countdown refresh cadence
const DefaultInterval = time.Second

// Options configures a countdown loop. Zero values mean a real clock
// ticking every DefaultInterval.
type Options struct {
	Interval time.Duration
	Now      func() time.Time
	// Tick replaces the internal time.Ticker when set
	Tick <-chan time.Time
}

func (o Options) start() (func() time.Time, <-chan time.Time, func()) {
	now := o.Now
	if now == nil {
		now = time.Now
	}
	if o.Tick != nil {
		return now, o.Tick, func() {}
	}

	interval := o.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := time.NewTicker(interval)
	return now, t.C, t.Stop
}

// Run emits the time remaining until target immediately and then on
// every tick. It returns true once the expired value has been emitted
// and false when ctx is cancelled first.
func Run(ctx context.Context, target time.Time, emit func(models.TimeRemaining), opts Options) bool {
	now, tick, stop := opts.start()
	defer stop()
	return run(ctx, target, emit, now, tick)
}

func run(ctx context.Context, target time.Time, emit func(models.TimeRemaining), now func() time.Time, tick <-chan time.Time) bool {
	for {
		if ctx.Err() != nil {
			return false
		}

		r := vacation.Remaining(target, now())
		emit(r)
		if r.IsExpired {
			return true
		}

		select {
		case <-ctx.Done():
			return false
		case <-tick:
		}
	}
}

// Watch keeps a countdown running across transitions. resolve is called
// for the first target and again one tick after each expiry, so the
// status behind the target is always recomputed from a fresh clock.
// Watch returns the resolve error, or ctx.Err() once cancelled.
func Watch(ctx context.Context, resolve func(context.Context) (time.Time, error), emit func(models.TimeRemaining), opts Options) error {
	now, tick, stop := opts.start()
	defer stop()

	for {
		target, err := resolve(ctx)
		if err != nil {
			return err
		}

		if !run(ctx, target, emit, now, tick) {
			return ctx.Err()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
}
