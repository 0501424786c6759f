package ratelimit

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	limiter := New(300, time.Minute)

	require.NotNil(t, limiter)
	assert.Equal(t, 300, limiter.limit)
	assert.Equal(t, time.Minute, limiter.interval)
	assert.Equal(t, 300, limiter.Available())

	assert.Equal(t, 1, New(0, time.Second).limit)
}

func TestLimiter_Wait(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		interval      time.Duration
		requestCount  int
		expectedWait  bool
		cancelContext bool
		expectedError bool
	}{
		{
			name:         "within limit",
			limit:        10,
			interval:     time.Second,
			requestCount: 5,
		},
		{
			name:         "exceed limit",
			limit:        2,
			interval:     100 * time.Millisecond,
			requestCount: 3,
			expectedWait: true,
		},
		{
			name:          "context cancelled",
			limit:         1,
			interval:      time.Minute,
			requestCount:  2,
			cancelContext: true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := New(tt.limit, tt.interval)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			start := time.Now()
			var lastErr error
			for i := 0; i < tt.requestCount; i++ {
				if tt.cancelContext && i == tt.requestCount-1 {
					cancel()
				}
				lastErr = limiter.Wait(ctx)
			}
			elapsed := time.Since(start)

			if tt.expectedError {
				assert.ErrorIs(t, lastErr, context.Canceled)
				return
			}
			require.NoError(t, lastErr)

			if tt.expectedWait {
				assert.GreaterOrEqual(t, elapsed, tt.interval/2)
			} else {
				assert.Less(t, elapsed, tt.interval)
			}
		})
	}
}

func TestLimiter_UpdateFromHeaders(t *testing.T) {
	t.Run("remaining lowers tokens", func(t *testing.T) {
		limiter := New(300, time.Minute)
		h := http.Header{}
		h.Set("X-RateLimit-Remaining", "12")
		limiter.UpdateFromHeaders(h)
		assert.Equal(t, 12, limiter.Available())
	})

	t.Run("remaining is capped at limit", func(t *testing.T) {
		limiter := New(10, time.Minute)
		h := http.Header{}
		h.Set("X-RateLimit-Remaining", "500")
		limiter.UpdateFromHeaders(h)
		assert.Equal(t, 10, limiter.Available())
	})

	t.Run("invalid values are ignored", func(t *testing.T) {
		limiter := New(10, time.Minute)
		h := http.Header{}
		h.Set("X-RateLimit-Remaining", "lots")
		h.Set("X-RateLimit-Reset", "soon")
		limiter.UpdateFromHeaders(h)
		assert.Equal(t, 10, limiter.Available())
	})

	t.Run("relative reset schedules refill", func(t *testing.T) {
		limiter := New(5, time.Minute)
		h := http.Header{}
		h.Set("X-RateLimit-Remaining", "0")
		h.Set("X-RateLimit-Reset", "30")
		limiter.UpdateFromHeaders(h)

		expected := time.Now().Add(30 * time.Second).Add(-time.Minute)
		assert.WithinDuration(t, expected, limiter.lastRefill, time.Second)
		assert.Equal(t, 0, limiter.Available())
	})

	t.Run("absolute reset in the past refills", func(t *testing.T) {
		limiter := New(5, time.Minute)
		h := http.Header{}
		h.Set("X-RateLimit-Remaining", "0")
		h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10))
		limiter.UpdateFromHeaders(h)
		assert.Equal(t, 5, limiter.Available())
	})
}
