package cache

import (
	"context"
	"fmt"
)

// FetchFn is the function signature CacheService runs on a cache miss to
// fetch from the source of truth.
type FetchFn[T any] func(ctx context.Context) (T, error)

// CacheService exposes the read-through caching operations needed when
// decorating resource clients. Implementations store values as any; the
// generic GetOrFetch wrapper restores the concrete type for callers.
type CacheService interface {
	GetOrFetch(ctx context.Context, key string, fetch func(ctx context.Context) (any, error)) (any, error)
	Delete(ctx context.Context, key string) error
}

// GetOrFetch is the type-safe entry point to a CacheService. On a miss it
// runs fetch, stores the result under key, and returns it; on a hit the
// cached value is returned and fetch never runs.
func GetOrFetch[T any](ctx context.Context, service CacheService, key string, fetch FetchFn[T]) (T, error) {
	result, err := service.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	typed, ok := result.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache: key %q holds %T, want %T", key, result, zero)
	}
	return typed, nil
}

// KeySerializer builds a cache key from an entity name, an operation, and
// the operation's parameters. Keys must be stable across calls and runs so
// that value-equal parameters always map to the same entry.
type KeySerializer interface {
	SerializeKey(entity, operation string, args ...any) string
}
