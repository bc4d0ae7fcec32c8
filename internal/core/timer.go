package core

import (
	"context"
	"time"
)

const defaultTPS = 60

// FixedStep paces a loop to a steady number of steps per second. Time spent
// inside a step counts toward the next interval, so a slow step is followed
// by a shorter wait instead of drifting the schedule.
type FixedStep struct {
	interval time.Duration
	owed     time.Duration
	prev     time.Time

	clock func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewFixedStep returns a pacer for tps steps per second whose first step is
// due immediately. A non-positive tps selects 60.
func NewFixedStep(tps int) *FixedStep {
	f := &FixedStep{clock: time.Now, sleep: sleepContext}
	f.SetTPS(tps)
	f.owed = f.interval
	return f
}

// SetTPS changes the rate. A non-positive tps selects 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = defaultTPS
	}
	f.interval = time.Second / time.Duration(tps)
}

// ShouldStep adds the time elapsed since the previous call and, when a full
// interval is owed, consumes it and reports true.
func (f *FixedStep) ShouldStep() bool {
	now := f.clock()
	if !f.prev.IsZero() {
		f.owed += now.Sub(f.prev)
	}
	f.prev = now
	if f.owed < f.interval {
		return false
	}
	f.owed -= f.interval
	return true
}

// Wait returns the time left until the next interval is owed.
func (f *FixedStep) Wait() time.Duration {
	return max(f.interval-f.owed, 0)
}

// Next blocks until a step is due. It returns ctx.Err() if ctx ends first.
func (f *FixedStep) Next(ctx context.Context) error {
	for !f.ShouldStep() {
		if err := f.sleep(ctx, f.Wait()); err != nil {
			return err
		}
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
