// Package ratelimiter throttles repeated failed operations per key.
package ratelimiter

import (
	"sync"
	"time"
)

// AttemptLimiter counts failures per key inside a sliding window.
// Once limit failures are recorded within interval, Blocked reports true for that key
// until the oldest failure leaves the window or Reset is called.
type AttemptLimiter struct {
	mu        sync.Mutex
	limit     int           // failures allowed per window
	interval  time.Duration // window length
	attempts  map[string][]time.Time
	lastSweep time.Time
	now       func() time.Time
}

// NewAttemptLimiter creates a limiter allowing limit failures per interval.
func NewAttemptLimiter(limit int, interval time.Duration) *AttemptLimiter {
	return &AttemptLimiter{
		limit:    limit,
		interval: interval,
		attempts: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// Blocked reports whether key has used up its failures for the current window.
func (l *AttemptLimiter) Blocked(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.pruneLocked(key, l.now())) >= l.limit
}

// AddFailure records one failure for key.
func (l *AttemptLimiter) AddFailure(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.interval {
		l.sweepLocked(now)
	}
	l.attempts[key] = append(l.pruneLocked(key, now), now)
}

// sweepLocked drops every key whose failures have all left the window, so keys
// that are never touched again do not stay in the map.
func (l *AttemptLimiter) sweepLocked(now time.Time) {
	for key := range l.attempts {
		l.pruneLocked(key, now)
	}
	l.lastSweep = now
}

// Reset forgets all failures for key.
func (l *AttemptLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.attempts, key)
}

func (l *AttemptLimiter) pruneLocked(key string, now time.Time) []time.Time {
	values := l.attempts[key]
	if len(values) == 0 {
		return nil
	}

	threshold := now.Add(-l.interval)
	kept := values[:0]
	for _, v := range values {
		if v.After(threshold) {
			kept = append(kept, v)
		}
	}

	if len(kept) == 0 {
		delete(l.attempts, key)
		return nil
	}
	l.attempts[key] = kept
	return kept
}
