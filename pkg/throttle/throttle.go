// Package throttle provides pacing primitives for upstream API calls.
// The Wikimedia APIs are public and unauthenticated, so clients are
// expected to space their requests rather than burst.
package throttle

import (
	"context"
	"sync"
	"time"
)

// Gate paces a sequence of operations. Wait blocks until the next
// operation may proceed, or until the context is done.
type Gate interface {
	Wait(ctx context.Context) error
}

// MinInterval is a Gate that enforces a minimum interval between
// successive operations. The first call passes immediately. Safe for
// concurrent use: concurrent callers are queued at interval spacing.
type MinInterval struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

// NewMinInterval creates a gate that spaces operations at least d apart.
// A non-positive d never delays.
func NewMinInterval(d time.Duration) *MinInterval {
	return &MinInterval{interval: d}
}

// Wait blocks until the caller's turn arrives or ctx is done.
func (g *MinInterval) Wait(ctx context.Context) error {
	if g == nil || g.interval <= 0 {
		return ctx.Err()
	}

	g.mu.Lock()
	now := time.Now()
	var wait time.Duration
	if g.next.After(now) {
		wait = g.next.Sub(now)
	}
	// Reserve this caller's slot before unlocking so concurrent
	// callers line up behind it.
	g.next = now.Add(wait + g.interval)
	g.mu.Unlock()

	if wait <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// None is a Gate that never delays. Useful in tests and when the
// caller manages pacing itself.
type None struct{}

// Wait returns immediately unless ctx is already done.
func (None) Wait(ctx context.Context) error {
	return ctx.Err()
}
