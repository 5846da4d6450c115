// Package cacheinfra adapts the sturdyc in-memory cache to the cache
// package's CacheService contract.
package cacheinfra

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/viccon/sturdyc"
)

// Config holds the sturdyc initialization parameters.
//
// Early refreshes are deliberately not enabled: a background refresh would
// repopulate entries outside any user interaction, which undercuts the
// mutation-driven invalidation contract. Entries live until they are
// invalidated or their TTL lapses.
type Config struct {
	// Capacity is the maximum number of entries. Must be > 0.
	Capacity int

	// NumShards is the number of cache shards for concurrent access.
	// Must be > 0.
	NumShards int

	// TTL is how long an untouched entry stays servable. Must be > 0.
	TTL time.Duration

	// EvictionPercentage is what share of entries to evict when the cache
	// hits capacity, 1-100.
	EvictionPercentage int

	// EvictionInterval is how often expired entries are collected. Zero
	// uses sturdyc's default.
	EvictionInterval time.Duration
}

// DefaultConfig returns the defaults used by the composition root.
func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          64,
		TTL:                5 * time.Minute,
		EvictionPercentage: 10,
	}
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&c.NumShards, validation.Required, validation.Min(1)),
		validation.Field(&c.TTL, validation.Required, validation.Min(time.Nanosecond)),
		validation.Field(&c.EvictionPercentage, validation.Required, validation.Min(1), validation.Max(100)),
		validation.Field(&c.EvictionInterval, validation.Min(time.Duration(0))),
	)
}

func (c Config) options() []sturdyc.Option {
	var options []sturdyc.Option
	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}
	return options
}

// SturdycService implements cache.CacheService on top of a sturdyc client.
type SturdycService struct {
	client *sturdyc.Client[any]
}

// NewSturdycService validates cfg and builds the adapter.
func NewSturdycService(cfg Config) (*SturdycService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[any](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.options()...,
	)

	return &SturdycService{client: client}, nil
}

// GetOrFetch returns the cached value for key, running fetch on a miss.
// Sturdyc deduplicates concurrent fetches of the same key, so a burst of
// identical list queries results in a single backend call.
func (s *SturdycService) GetOrFetch(ctx context.Context, key string, fetch func(ctx context.Context) (any, error)) (any, error) {
	return s.client.GetOrFetch(ctx, key, fetch)
}

// Delete removes a single entry so the next GetOrFetch refetches.
func (s *SturdycService) Delete(ctx context.Context, key string) error {
	s.client.Delete(key)
	return nil
}
