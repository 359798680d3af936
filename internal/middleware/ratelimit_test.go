package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 20; i++ {
		require.True(t, rl.Allow("10.0.0.1", 20, time.Minute), "request %d should be allowed", i+1)
	}
	require.False(t, rl.Allow("10.0.0.1", 20, time.Minute), "request 21 should be rejected")
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 20; i++ {
		require.True(t, rl.Allow("10.0.0.1", 20, time.Minute))
	}
	require.False(t, rl.Allow("10.0.0.1", 20, time.Minute))
	require.True(t, rl.Allow("10.0.0.2", 20, time.Minute))
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	rl := NewRateLimiter()
	window := 200 * time.Millisecond

	// Two hits spread across the window.
	require.True(t, rl.Allow("10.0.0.1", 2, window))
	time.Sleep(120 * time.Millisecond)
	require.True(t, rl.Allow("10.0.0.1", 2, window))
	require.False(t, rl.Allow("10.0.0.1", 2, window))

	// The first hit ages out, the second is still counted. A fixed window
	// would have fully reset here and admitted a double burst.
	time.Sleep(120 * time.Millisecond)
	require.True(t, rl.Allow("10.0.0.1", 2, window))
	require.False(t, rl.Allow("10.0.0.1", 2, window))
}

func TestRateLimiter_WindowResets(t *testing.T) {
	rl := NewRateLimiter()

	require.True(t, rl.Allow("10.0.0.1", 1, 10*time.Millisecond))
	require.False(t, rl.Allow("10.0.0.1", 1, 10*time.Millisecond))

	time.Sleep(15 * time.Millisecond)
	require.True(t, rl.Allow("10.0.0.1", 1, 10*time.Millisecond))
}
