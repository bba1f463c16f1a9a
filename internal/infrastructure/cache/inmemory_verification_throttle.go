package cache

import (
	"context"
	"sync"
	"time"

	procurementapp "github.com/tradecore/backend/internal/application/procurement"
)

// attemptRecord tracks failed attempts for a key with expiration
type attemptRecord struct {
	count     int
	expiresAt time.Time
}

// InMemoryVerificationThrottle implements VerificationThrottle using an
// in-memory map. Suitable for single-instance deployments and testing.
type InMemoryVerificationThrottle struct {
	mu          sync.RWMutex
	records     map[string]attemptRecord
	maxAttempts int
	window      time.Duration
	stopChan    chan struct{}
	wg          sync.WaitGroup
	closeOnce   sync.Once
}

// NewInMemoryVerificationThrottle creates an in-memory verification throttle.
// It starts a background goroutine to clean up expired counters.
func NewInMemoryVerificationThrottle() *InMemoryVerificationThrottle {
	throttle := &InMemoryVerificationThrottle{
		records:     make(map[string]attemptRecord),
		maxAttempts: DefaultMaxAttempts,
		window:      DefaultAttemptWindow,
		stopChan:    make(chan struct{}),
	}

	throttle.wg.Add(1)
	go throttle.cleanupLoop()

	return throttle
}

// Allow reports whether another verification attempt is permitted for the key
func (t *InMemoryVerificationThrottle) Allow(ctx context.Context, key string) (bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	record, exists := t.records[key]
	if !exists || time.Now().After(record.expiresAt) {
		return true, nil
	}

	return record.count < t.maxAttempts, nil
}

// RecordFailure counts a failed attempt against the key
func (t *InMemoryVerificationThrottle) RecordFailure(ctx context.Context, key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	record, exists := t.records[key]
	if !exists || now.After(record.expiresAt) {
		t.records[key] = attemptRecord{count: 1, expiresAt: now.Add(t.window)}
		return nil
	}

	record.count++
	t.records[key] = record
	return nil
}

// Reset clears the attempt counter for the key
func (t *InMemoryVerificationThrottle) Reset(ctx context.Context, key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.records, key)
	return nil
}

// Close stops the cleanup goroutine and releases resources.
// Safe to call multiple times.
func (t *InMemoryVerificationThrottle) Close() error {
	t.closeOnce.Do(func() {
		close(t.stopChan)
		t.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired counters
func (t *InMemoryVerificationThrottle) cleanupLoop() {
	defer t.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopChan:
			return
		case <-ticker.C:
			t.cleanup()
		}
	}
}

func (t *InMemoryVerificationThrottle) cleanup() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	for key, record := range t.records {
		if now.After(record.expiresAt) {
			delete(t.records, key)
		}
	}
}

// Size returns the number of tracked keys (for testing/monitoring)
func (t *InMemoryVerificationThrottle) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.records)
}

// Ensure InMemoryVerificationThrottle implements VerificationThrottle
var _ procurementapp.VerificationThrottle = (*InMemoryVerificationThrottle)(nil)
