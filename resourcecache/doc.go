// Package resourcecache decorates apiclient resources with read-through
// caching, entity-wide invalidation, and user-facing notifications.
//
// # Overview
//
// CachedResource wraps a Backend (normally *apiclient.Resource) so that:
//
//   - List and Get results are cached under (entity, operation, parameters)
//     keys and served from the cache while fresh.
//   - Every successful mutation invalidates all cached list queries for the
//     entity, and updates/deletes additionally invalidate the affected
//     record's detail entry. Invalidation is deliberately coarse: dropping
//     everything for one entity name eliminates the class of stale-key bugs
//     that surgical invalidation invites, at the cost of some refetches.
//   - Successful mutations emit a success notification ("Ansatt opprettet"),
//     failed mutations emit a failure notification and leave every cache
//     entry untouched. Errors are always returned to the caller as well.
//
// Mutation tracks the idle/pending/succeeded/failed lifecycle of a single
// mutation for UI layers that render in-flight state.
//
// Wiring one entity takes a Definition plus a handful of lines; see the
// entities package for the catalog.
package resourcecache
