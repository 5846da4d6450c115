package cache

import (
	"time"

	"github.com/nordkost/go-erp-client/internal/cacheinfra"
)

// Config exposes the query-cache configuration options for consumers of the
// cache package. The cache is a pure performance optimization: it is
// in-memory, process-wide, and fully disposable at any time.
type Config struct {
	// Capacity is the maximum number of cached queries.
	Capacity int

	// NumShards controls sharding for concurrent access.
	NumShards int

	// TTL is the time-to-stale for cached queries. Mutations invalidate
	// earlier; the TTL only bounds how long an untouched entry may serve.
	TTL time.Duration

	// EvictionPercentage is the share of entries evicted when the cache
	// reaches capacity, 1-100.
	EvictionPercentage int

	// EvictionInterval sets how often expired entries are collected. Zero
	// uses the backend default.
	EvictionInterval time.Duration
}

// DefaultConfig returns a Config with the defaults used by the composition
// root: a few minutes of reuse, bounded memory.
func DefaultConfig() Config {
	internal := cacheinfra.DefaultConfig()
	return Config{
		Capacity:           internal.Capacity,
		NumShards:          internal.NumShards,
		TTL:                internal.TTL,
		EvictionPercentage: internal.EvictionPercentage,
		EvictionInterval:   internal.EvictionInterval,
	}
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// NewCacheService constructs the default sturdyc-backed cache service.
func NewCacheService(cfg Config) (CacheService, error) {
	return cacheinfra.NewSturdycService(cfg.toInternal())
}

func (c Config) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
	}
}
