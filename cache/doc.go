// Package cache provides the query-cache interfaces and key serialization
// used by the cached resource layer.
//
// # Overview
//
// Two interfaces make up the contract:
//
//   - CacheService: read-through GetOrFetch plus Delete. The default
//     implementation is backed by sturdyc (see NewCacheService).
//   - KeySerializer: turns (entity, operation, parameters) into a stable
//     string key. Value-equal parameters must always produce the same key;
//     that property is what lets list queries re-use each other's results.
//
// Keys are segmented with KeySeparator so that all queries for one entity
// share a prefix. The resourcecache package relies on that layout for its
// coarse, entity-wide invalidation.
//
// The cache holds no authoritative state. Dropping it, or any entry in it,
// is always correct; only latency is affected.
package cache
