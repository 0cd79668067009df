package leaderboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Clock abstracts wall-clock time so tests can control cache expiry
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now
func SystemClock() Clock { return systemClock{} }

type cacheEntry struct {
	boards    *Boards
	createdAt time.Time
}

// ResultCache memoizes one refresh cycle's boards for a fixed TTL. Holds at
// most one entry. Expiry is checked lazily at read time; there is no
// background eviction. Failed computations are never stored, so the next
// read retries the full pipeline.
type ResultCache struct {
	mu    sync.RWMutex
	entry *cacheEntry
	ttl   time.Duration
	clock Clock
	group singleflight.Group
	log   zerolog.Logger
}

// NewResultCache creates a cache with the given TTL. A nil clock defaults to
// the system clock.
func NewResultCache(ttl time.Duration, clock Clock, log zerolog.Logger) *ResultCache {
	if clock == nil {
		clock = SystemClock()
	}
	return &ResultCache{
		ttl:   ttl,
		clock: clock,
		log:   log.With().Str("component", "result_cache").Logger(),
	}
}

// Get returns the cached boards if a non-expired entry exists
func (c *ResultCache) Get() (*Boards, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fresh()
}

// fresh checks the entry against the TTL. Callers hold at least a read lock.
func (c *ResultCache) fresh() (*Boards, bool) {
	if c.entry == nil {
		return nil, false
	}
	if c.clock.Now().Sub(c.entry.createdAt) >= c.ttl {
		return nil, false
	}
	return c.entry.boards, true
}

// GetOrCompute returns the cached boards or runs compute to fill the cache.
// Overlapping callers share one in-flight computation instead of issuing
// duplicate external-call storms.
func (c *ResultCache) GetOrCompute(ctx context.Context, compute func(ctx context.Context) (*Boards, error)) (*Boards, error) {
	if boards, ok := c.Get(); ok {
		return boards, nil
	}

	result, err, shared := c.group.Do("boards", func() (interface{}, error) {
		// A flight that finished while we queued may have stored a fresh
		// entry already.
		if boards, ok := c.Get(); ok {
			return boards, nil
		}

		boards, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entry = &cacheEntry{boards: boards, createdAt: c.clock.Now()}
		c.mu.Unlock()

		return boards, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		c.log.Debug().Msg("Joined in-flight refresh")
	}

	return result.(*Boards), nil
}

// Invalidate unconditionally clears the stored entry. The next read
// recomputes regardless of age.
func (c *ResultCache) Invalidate() {
	c.mu.Lock()
	c.entry = nil
	c.mu.Unlock()

	c.log.Debug().Msg("Cache invalidated")
}
