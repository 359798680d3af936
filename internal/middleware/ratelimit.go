package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/tsubaki-dev/lesson-points-api/internal/errors"
)

// RateLimiter provides in-memory sliding-window rate limiting keyed by
// client. Each key tracks its recent hit timestamps; hits older than the
// window are pruned on every check, so a burst can never exceed the limit
// across a window boundary.
type RateLimiter struct {
	mu   sync.Mutex
	hits map[string][]time.Time
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		hits: make(map[string][]time.Time),
	}
	go rl.cleanupLoop()
	return rl
}

// Allow returns true if the key has seen fewer than limit hits within the
// trailing window.
func (rl *RateLimiter) Allow(key string, limit int, window time.Duration) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-window)

	hits := rl.hits[key]
	kept := hits[:0]
	for _, hit := range hits {
		if hit.After(cutoff) {
			kept = append(kept, hit)
		}
	}

	if len(kept) >= limit {
		rl.hits[key] = kept
		return false
	}

	rl.hits[key] = append(kept, now)
	return true
}

// cleanupLoop drops keys that have gone quiet to bound memory use.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, hits := range rl.hits {
			if len(hits) == 0 || now.Sub(hits[len(hits)-1]) > time.Hour {
				delete(rl.hits, key)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit returns middleware that limits requests per client IP.
// Requests over the limit are rejected before any credential check runs.
func RateLimit(limiter *RateLimiter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP(), limit, window) {
			apierrors.TooManyRequests(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}
