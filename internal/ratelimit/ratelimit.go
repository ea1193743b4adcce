// Package ratelimit provides a small token-bucket limiter used to slow
// down repeated, potentially automated attempts at a single expensive
// or security-sensitive operation -- here, opening a password-protected
// share backup.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter wraps a per-key token bucket. Each key (e.g. a backup file
// path) gets its own independent bucket, created lazily on first use.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	r        rate.Limit
	burst    int
}

// New creates a Limiter allowing r events per second per key, with the
// given burst allowance.
func New(r rate.Limit, burst int) *Limiter {
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		burst:    burst,
	}
}

// DefaultLimiter allows one backup-decrypt attempt per second per key,
// with a burst of 3 to tolerate a quick legitimate retry after a typo.
func DefaultLimiter() *Limiter {
	return New(rate.Limit(1), 3)
}

func (l *Limiter) getLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(l.r, l.burst)
		l.limiters[key] = lim
	}
	return lim
}

// Allow reports whether an event for key is permitted right now,
// consuming a token if so.
func (l *Limiter) Allow(key string) bool {
	return l.getLimiter(key).Allow()
}

// Wait blocks until an event for key is permitted or ctx is done.
func (l *Limiter) Wait(ctx context.Context, key string) error {
	return l.getLimiter(key).Wait(ctx)
}
