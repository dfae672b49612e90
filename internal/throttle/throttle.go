// Package throttle provides an adaptive minimum-interval rate limiter for
// the remote inference API: multiplicative backoff on failure, gentle easing
// on sustained success, converging toward the fastest sustainable rate.
package throttle

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	backoffFactor = 1.5
	easeFactor    = 0.9
	quotaFactor   = 2.0
)

type Throttle struct {
	mu sync.Mutex

	minInterval time.Duration
	lastRequest time.Time

	// failedSinceAdjust guards the easing path: a success only speeds the
	// throttle up when no failure landed since the last adjustment.
	failedSinceAdjust bool

	floor   time.Duration
	ceiling time.Duration

	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

func New(floor, ceiling time.Duration) *Throttle {
	return &Throttle{
		minInterval: floor,
		floor:       floor,
		ceiling:     ceiling,
		now:         time.Now,
		sleep:       sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Wait blocks until the minimum interval has elapsed since the previous
// remote request, or until ctx is done. The reservation is taken before
// sleeping so concurrent callers space themselves out.
func (t *Throttle) Wait(ctx context.Context) error {
	t.mu.Lock()
	now := t.now()
	var delay time.Duration
	if !t.lastRequest.IsZero() {
		if elapsed := now.Sub(t.lastRequest); elapsed < t.minInterval {
			delay = t.minInterval - elapsed
		}
	}
	t.lastRequest = now.Add(delay)
	t.mu.Unlock()

	if delay <= 0 {
		return nil
	}
	return t.sleep(ctx, delay)
}

// AdjustSuccess eases the interval toward the floor, but only when no
// failure has been recorded since the last adjustment.
func (t *Throttle) AdjustSuccess() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.failedSinceAdjust && t.minInterval > t.floor {
		t.minInterval = clamp(time.Duration(float64(t.minInterval)*easeFactor), t.floor, t.ceiling)
	}
	t.failedSinceAdjust = false
}

// AdjustFailure backs the interval off multiplicatively.
func (t *Throttle) AdjustFailure() {
	t.adjustUp(backoffFactor)
}

// AdjustQuota backs off harder than an ordinary failure; quota errors mean
// the provider explicitly asked us to slow down.
func (t *Throttle) AdjustQuota() {
	t.adjustUp(quotaFactor)
}

func (t *Throttle) adjustUp(factor float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev := t.minInterval
	t.minInterval = clamp(time.Duration(float64(t.minInterval)*factor), t.floor, t.ceiling)
	t.failedSinceAdjust = true
	if t.minInterval != prev {
		slog.Debug("throttle backed off", "from", prev, "to", t.minInterval)
	}
}

// MinInterval returns the current minimum interval, for monitoring.
func (t *Throttle) MinInterval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.minInterval
}

// Backpressured reports whether the throttle is currently backed off above
// its floor.
func (t *Throttle) Backpressured() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.minInterval > t.floor
}

func clamp(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}
