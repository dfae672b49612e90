// Package breaker implements a binary open/closed circuit breaker guarding
// the remote inference API. There is no half-open state: after the reset
// timeout the breaker closes and the next remote call is the trial, with the
// throttle metering how fast trials can arrive.
package breaker

import (
	"log/slog"
	"sync"
	"time"
)

type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

type Breaker struct {
	mu sync.Mutex

	state               State
	consecutiveFailures int
	resetDeadline       time.Time

	failureThreshold int
	resetTimeout     time.Duration

	// now is swapped out in tests.
	now func() time.Time
}

func New(failureThreshold int, resetTimeout time.Duration) *Breaker {
	return &Breaker{
		state:            Closed,
		failureThreshold: failureThreshold,
		resetTimeout:     resetTimeout,
		now:              time.Now,
	}
}

// IsOpen reports whether remote calls should be bypassed. It is
// side-effecting: when the reset deadline has passed it transitions the
// breaker back to closed before answering.
func (b *Breaker) IsOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == Open && !b.now().Before(b.resetDeadline) {
		slog.Info("circuit breaker reset deadline passed, closing", "deadline", b.resetDeadline)
		b.state = Closed
		b.consecutiveFailures = 0
	}
	return b.state == Open
}

// RecordSuccess clears the consecutive failure count.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.consecutiveFailures = 0
}

// RecordFailure increments the failure count and opens the breaker once the
// threshold is reached.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.consecutiveFailures++
	if b.consecutiveFailures >= b.failureThreshold && b.state == Closed {
		b.state = Open
		b.resetDeadline = b.now().Add(b.resetTimeout)
		slog.Warn("circuit breaker opened",
			"consecutiveFailures", b.consecutiveFailures,
			"resetDeadline", b.resetDeadline,
		)
	} else if b.state == Open {
		// Failures while open push the deadline out again.
		b.resetDeadline = b.now().Add(b.resetTimeout)
	}
}

// ConsecutiveFailures returns the current failure streak, for monitoring.
func (b *Breaker) ConsecutiveFailures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.consecutiveFailures
}
