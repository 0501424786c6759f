// Package ratelimit provides the token bucket shared by the catalog clients.
package ratelimit

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// resetEpochThreshold separates "seconds until reset" from absolute unix
// timestamps in reset headers. Modrinth sends the former.
const resetEpochThreshold = 1_000_000_000

// Limiter is a token bucket refilled in full once per interval.
type Limiter struct {
	mu         sync.Mutex
	limit      int
	interval   time.Duration
	tokens     int
	lastRefill time.Time
	now        func() time.Time
}

// New creates a limiter allowing limit requests per interval.
func New(limit int, interval time.Duration) *Limiter {
	if limit <= 0 {
		limit = 1
	}
	return &Limiter{
		limit:      limit,
		interval:   interval,
		tokens:     limit,
		lastRefill: time.Now(),
		now:        time.Now,
	}
}

// Wait blocks until a token is available or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	l.refillLocked()
	if l.tokens > 0 {
		l.tokens--
		l.mu.Unlock()
		return nil
	}
	waitTime := l.interval - l.now().Sub(l.lastRefill)
	l.mu.Unlock()

	if waitTime > 0 {
		timer := time.NewTimer(waitTime)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens = l.limit
	l.lastRefill = l.now()
	l.tokens--
	return nil
}

// Available returns the number of tokens left in the current interval.
func (l *Limiter) Available() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refillLocked()
	return l.tokens
}

func (l *Limiter) refillLocked() {
	if l.now().Sub(l.lastRefill) >= l.interval {
		l.tokens = l.limit
		l.lastRefill = l.now()
	}
}

// UpdateFromHeaders syncs the bucket with X-RateLimit-Remaining and
// X-RateLimit-Reset when the catalog sends them.
func (l *Limiter) UpdateFromHeaders(headers http.Header) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if remaining := headers.Get("X-RateLimit-Remaining"); remaining != "" {
		if n, err := strconv.Atoi(remaining); err == nil && n >= 0 {
			l.tokens = min(n, l.limit)
		}
	}

	if reset := headers.Get("X-RateLimit-Reset"); reset != "" {
		if v, err := strconv.ParseInt(reset, 10, 64); err == nil && v >= 0 {
			var resetAt time.Time
			if v < resetEpochThreshold {
				resetAt = l.now().Add(time.Duration(v) * time.Second)
			} else {
				resetAt = time.Unix(v, 0)
			}
			// the bucket refills once interval has passed since lastRefill
			l.lastRefill = resetAt.Add(-l.interval)
		}
	}
}
