// Package pacing slows the search loop down to an animation rate. Pacing is
// presentation only; a search behaves identically without it.
package pacing

import (
	"context"
	"time"
)

// DefaultDelay is the pause between frames of the console animation.
const DefaultDelay = 250 * time.Millisecond

// Delay waits a fixed duration between iterations.
type Delay struct {
	d time.Duration
}

// NewDelay returns a pacer sleeping d per iteration. d ≤ 0 never waits.
func NewDelay(d time.Duration) Delay {
	return Delay{d: d}
}

// Duration returns the configured pause.
func (p Delay) Duration() time.Duration { return p.d }

// Wait blocks for the configured pause or until ctx is done.
func (p Delay) Wait(ctx context.Context) error {
	if p.d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// None never waits. Used for tests and non-interactive runs.
type None struct{}

// Wait returns immediately, reporting ctx cancellation if any.
func (None) Wait(ctx context.Context) error { return ctx.Err() }
