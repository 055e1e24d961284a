// Package cache provides an in-memory cache of computed climb envelopes.
//
// The engine is a pure function of its AircraftConfig, so a config value is a
// complete cache key. The cache absorbs interactive re-submissions of the
// same parameters (a user mashing Calculate) without re-running the solver.
package cache

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Sy3drizvi/Aerospace/internal/envelope"
	"github.com/Sy3drizvi/Aerospace/internal/metrics"
)

// Config holds cache configuration loaded from environment variables.
type Config struct {
	MaxEntries int // entry cap before oldest-first eviction (default: 128)
}

// entry wraps a cached result with its storage time, used for eviction order.
type entry struct {
	result   *envelope.Result
	storedAt time.Time
}

// ResultCache is a bounded in-memory map from AircraftConfig to its computed
// envelope. Safe for concurrent use by multiple goroutines. Cached results
// are shared; callers must treat them as read-only.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[envelope.AircraftConfig]*entry

	config Config
	logger *slog.Logger

	// Counters (lock-free).
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// NewResultCache creates an empty result cache.
func NewResultCache(config Config, logger *slog.Logger) *ResultCache {
	if config.MaxEntries <= 0 {
		config.MaxEntries = 128
	}
	logger.Info("envelope cache initialized", "max_entries", config.MaxEntries)

	return &ResultCache{
		entries: make(map[envelope.AircraftConfig]*entry),
		config:  config,
		logger:  logger,
	}
}

// Get returns the cached result for the given configuration, or nil.
func (c *ResultCache) Get(cfg envelope.AircraftConfig) *envelope.Result {
	c.mu.RLock()
	e, ok := c.entries[cfg]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
		metrics.IncCacheHits()
		return e.result
	}

	c.misses.Add(1)
	metrics.IncCacheMisses()
	return nil
}

// Put stores a computed result, evicting the oldest entry when the cache is
// at capacity.
func (c *ResultCache) Put(cfg envelope.AircraftConfig, res *envelope.Result) {
	c.mu.Lock()
	if _, exists := c.entries[cfg]; !exists && len(c.entries) >= c.config.MaxEntries {
		c.evictOldestLocked()
	}
	c.entries[cfg] = &entry{result: res, storedAt: time.Now()}
	count := len(c.entries)
	c.mu.Unlock()

	metrics.SetCacheEntries(count)
}

// evictOldestLocked removes the entry with the earliest storedAt.
// Caller holds mu. The entry count is small (bounded by MaxEntries), so a
// linear scan is fine.
func (c *ResultCache) evictOldestLocked() {
	var (
		oldestKey envelope.AircraftConfig
		oldestAt  time.Time
		found     bool
	)
	for k, e := range c.entries {
		if !found || e.storedAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = e.storedAt
			found = true
		}
	}
	if found {
		delete(c.entries, oldestKey)
		c.evictions.Add(1)
		metrics.AddCacheEvictions(1)
		c.logger.Debug("cache eviction", "stored_at", oldestAt)
	}
}

// Stats holds cache statistics for the stats endpoint.
type Stats struct {
	Entries   int   `json:"entries"`
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
}

// Stats returns current cache statistics.
func (c *ResultCache) Stats() Stats {
	c.mu.RLock()
	count := len(c.entries)
	c.mu.RUnlock()

	return Stats{
		Entries:   count,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
