// Package cache provides shared-state backends for rate limiting and
// token bookkeeping.
package cache

import (
	"context"
	"fmt"
	"time"

	procurementapp "github.com/tradecore/backend/internal/application/procurement"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultMaxAttempts is the number of failed verifications allowed per window
	DefaultMaxAttempts = 5
	// DefaultAttemptWindow is how long failed attempts are counted
	DefaultAttemptWindow = 15 * time.Minute
)

// RedisVerificationThrottle implements VerificationThrottle using Redis.
// Failure counters are shared across instances, so a caller cannot dodge
// the limit by hitting a different replica.
type RedisVerificationThrottle struct {
	client      *redis.Client
	keyPrefix   string
	maxAttempts int
	window      time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisVerificationThrottle creates a Redis-backed verification throttle
func NewRedisVerificationThrottle(cfg RedisConfig) (*RedisVerificationThrottle, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisVerificationThrottle{
		client:      client,
		keyPrefix:   "verify:attempts:",
		maxAttempts: DefaultMaxAttempts,
		window:      DefaultAttemptWindow,
	}, nil
}

// NewRedisVerificationThrottleWithClient creates a throttle with an existing
// Redis client. Useful for testing or sharing a client across components.
func NewRedisVerificationThrottleWithClient(client *redis.Client, keyPrefix string, maxAttempts int, window time.Duration) *RedisVerificationThrottle {
	if keyPrefix == "" {
		keyPrefix = "verify:attempts:"
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if window <= 0 {
		window = DefaultAttemptWindow
	}
	return &RedisVerificationThrottle{
		client:      client,
		keyPrefix:   keyPrefix,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow reports whether another verification attempt is permitted for the key
func (t *RedisVerificationThrottle) Allow(ctx context.Context, key string) (bool, error) {
	count, err := t.client.Get(ctx, t.keyPrefix+key).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read attempt counter: %w", err)
	}

	return count < t.maxAttempts, nil
}

// RecordFailure counts a failed attempt against the key.
// The window starts at the first failure and is not extended by later ones.
func (t *RedisVerificationThrottle) RecordFailure(ctx context.Context, key string) error {
	fullKey := t.keyPrefix + key

	count, err := t.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	if count == 1 {
		if err := t.client.Expire(ctx, fullKey, t.window).Err(); err != nil {
			return fmt.Errorf("failed to set attempt window: %w", err)
		}
	}

	return nil
}

// Reset clears the attempt counter for the key
func (t *RedisVerificationThrottle) Reset(ctx context.Context, key string) error {
	if err := t.client.Del(ctx, t.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to reset attempt counter: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (t *RedisVerificationThrottle) Close() error {
	return t.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (t *RedisVerificationThrottle) GetClient() *redis.Client {
	return t.client
}

// Ensure RedisVerificationThrottle implements VerificationThrottle
var _ procurementapp.VerificationThrottle = (*RedisVerificationThrottle)(nil)
