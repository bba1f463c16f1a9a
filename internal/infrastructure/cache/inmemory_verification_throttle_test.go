package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryVerificationThrottle_AllowsFreshKey(t *testing.T) {
	throttle := NewInMemoryVerificationThrottle()
	defer throttle.Close()

	allowed, err := throttle.Allow(context.Background(), "company:supplier")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestInMemoryVerificationThrottle_BlocksAfterMaxAttempts(t *testing.T) {
	throttle := NewInMemoryVerificationThrottle()
	defer throttle.Close()
	ctx := context.Background()
	key := "company:supplier"

	for i := 0; i < DefaultMaxAttempts; i++ {
		allowed, err := throttle.Allow(ctx, key)
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
		require.NoError(t, throttle.RecordFailure(ctx, key))
	}

	allowed, err := throttle.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestInMemoryVerificationThrottle_KeysAreIndependent(t *testing.T) {
	throttle := NewInMemoryVerificationThrottle()
	defer throttle.Close()
	ctx := context.Background()

	for i := 0; i < DefaultMaxAttempts; i++ {
		require.NoError(t, throttle.RecordFailure(ctx, "blocked"))
	}

	allowed, err := throttle.Allow(ctx, "blocked")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = throttle.Allow(ctx, "other")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestInMemoryVerificationThrottle_ResetClearsCounter(t *testing.T) {
	throttle := NewInMemoryVerificationThrottle()
	defer throttle.Close()
	ctx := context.Background()
	key := "company:supplier"

	for i := 0; i < DefaultMaxAttempts; i++ {
		require.NoError(t, throttle.RecordFailure(ctx, key))
	}

	allowed, err := throttle.Allow(ctx, key)
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, throttle.Reset(ctx, key))

	allowed, err = throttle.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestInMemoryVerificationThrottle_ExpiredWindowAllowsAgain(t *testing.T) {
	throttle := NewInMemoryVerificationThrottle()
	defer throttle.Close()
	ctx := context.Background()
	key := "company:supplier"

	for i := 0; i < DefaultMaxAttempts; i++ {
		require.NoError(t, throttle.RecordFailure(ctx, key))
	}

	// Force the window to lapse
	throttle.mu.Lock()
	record := throttle.records[key]
	record.expiresAt = time.Now().Add(-time.Second)
	throttle.records[key] = record
	throttle.mu.Unlock()

	allowed, err := throttle.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, allowed)

	// A new failure starts a fresh window
	require.NoError(t, throttle.RecordFailure(ctx, key))
	throttle.mu.RLock()
	assert.Equal(t, 1, throttle.records[key].count)
	throttle.mu.RUnlock()
}

func TestInMemoryVerificationThrottle_CleanupRemovesExpired(t *testing.T) {
	throttle := NewInMemoryVerificationThrottle()
	defer throttle.Close()
	ctx := context.Background()

	require.NoError(t, throttle.RecordFailure(ctx, "stale"))
	require.NoError(t, throttle.RecordFailure(ctx, "fresh"))

	throttle.mu.Lock()
	record := throttle.records["stale"]
	record.expiresAt = time.Now().Add(-time.Second)
	throttle.records["stale"] = record
	throttle.mu.Unlock()

	throttle.cleanup()

	assert.Equal(t, 1, throttle.Size())
}

func TestInMemoryVerificationThrottle_CloseIsIdempotent(t *testing.T) {
	throttle := NewInMemoryVerificationThrottle()

	require.NoError(t, throttle.Close())
	require.NoError(t, throttle.Close())
}
