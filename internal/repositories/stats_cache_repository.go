package repositories

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	// DefaultCacheTTL is how long a computed metric bundle stays valid
	DefaultCacheTTL = time.Hour
	// DefaultComputeTimeout bounds a shared computation once detached from its callers
	DefaultComputeTimeout = 30 * time.Second
)

// Cache kinds, one per metric bundle
const (
	CacheKindStats     = "stats"
	CacheKindLanguages = "languages"
	CacheKindStreak    = "streak"
)

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// StatsCacheRepository is an in-memory key/value store with per-entry
// expiry. Expired entries are dropped lazily on read. Concurrent misses for
// the same key share a single compute call.
type StatsCacheRepository struct {
	mu             sync.RWMutex
	entries        map[string]cacheEntry
	ttl            time.Duration
	computeTimeout time.Duration
	now            func() time.Time
	flights        singleflight.Group
}

// NewStatsCacheRepository creates a cache whose entries live for ttl. A nil
// clock defaults to time.Now.
func NewStatsCacheRepository(ttl time.Duration, now func() time.Time) *StatsCacheRepository {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if now == nil {
		now = time.Now
	}
	return &StatsCacheRepository{
		entries:        make(map[string]cacheEntry),
		ttl:            ttl,
		computeTimeout: DefaultComputeTimeout,
		now:            now,
	}
}

// WithComputeTimeout sets the overall bound on a shared computation.
// Non-positive values keep the current bound.
func (r *StatsCacheRepository) WithComputeTimeout(timeout time.Duration) *StatsCacheRepository {
	if timeout > 0 {
		r.computeTimeout = timeout
	}
	return r
}

// CacheKey builds the key for a metric kind and identity
func CacheKey(kind, identity string) string {
	return kind + ":" + identity
}

// TTL returns the lifetime applied to stored entries
func (r *StatsCacheRepository) TTL() time.Duration {
	return r.ttl
}

// Get returns the value stored under key if it has not expired
func (r *StatsCacheRepository) Get(key string) (interface{}, bool) {
	r.mu.RLock()
	entry, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !r.now().Before(entry.expiresAt) {
		r.mu.Lock()
		// another goroutine may have refreshed the entry in between
		if current, ok := r.entries[key]; ok && !r.now().Before(current.expiresAt) {
			delete(r.entries, key)
		}
		r.mu.Unlock()
		return nil, false
	}

	return entry.value, true
}

// Set stores value under key, expiring ttl from now
func (r *StatsCacheRepository) Set(key string, value interface{}) {
	r.mu.Lock()
	r.entries[key] = cacheEntry{
		value:     value,
		expiresAt: r.now().Add(r.ttl),
	}
	r.mu.Unlock()
}

// Len returns the number of stored entries, including expired ones not yet read
func (r *StatsCacheRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}


// GetOrCompute returns the live value for key or runs compute to produce
// it. Failed computations are not stored. The caller's context bounds the
// wait only: compute runs detached from its cancellation so one caller
// giving up does not fail the others sharing the flight, and is cut off
// after the compute timeout instead.
func (r *StatsCacheRepository) GetOrCompute(ctx context.Context, key string, compute func(context.Context) (interface{}, error)) (interface{}, error) {
	if value, ok := r.Get(key); ok {
		return value, nil
	}

	ch := r.flights.DoChan(key, func() (interface{}, error) {
		if value, ok := r.Get(key); ok {
			return value, nil
		}
		computeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.computeTimeout)
		defer cancel()
		value, err := compute(computeCtx)
		if err != nil {
			return nil, err
		}
		r.Set(key, value)
		return value, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-ch:
		return result.Val, result.Err
	}
}

// GetOrCompute is the typed form of StatsCacheRepository.GetOrCompute
func GetOrCompute[T any](ctx context.Context, r *StatsCacheRepository, key string, compute func(context.Context) (T, error)) (T, error) {
	value, err := r.GetOrCompute(ctx, key, func(ctx context.Context) (interface{}, error) {
		return compute(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return value.(T), nil
}
