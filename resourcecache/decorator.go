package resourcecache

import (
	"context"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/nordkost/go-erp-client/apiclient"
	"github.com/nordkost/go-erp-client/cache"
)

// Cache key operation segments.
const (
	opList = "list"
	opGet  = "get"
)

// ErrNoID is returned by Get when the id is zero or negative. Detail views
// for not-yet-created records call Get before an id exists; the guard keeps
// those calls from ever reaching the network.
var ErrNoID = errors.New("resourcecache: no id provided")

// Backend is the five-operation access contract a CachedResource decorates.
// *apiclient.Resource satisfies it.
type Backend[T any] interface {
	List(ctx context.Context, params *apiclient.ListParams) (apiclient.ListResult[T], error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, body any) (T, error)
	Update(ctx context.Context, id int64, patch any) (T, error)
	Delete(ctx context.Context, id int64) error
}

var _ Backend[any] = (*apiclient.Resource[any])(nil)

// Definition describes one entity for caching and notification purposes.
type Definition[T any] struct {
	// Name is the cache namespace, conventionally the backend resource name
	// ("ansatte").
	Name string

	// Singular and Plural are the user-facing display names ("Ansatt",
	// "Ansatte").
	Singular string
	Plural   string

	// ID extracts the record's identity.
	ID func(T) int64

	// Label extracts the record's display name for notifications. Nil or an
	// empty result falls back to Singular.
	Label func(T) string
}

// Validate checks that the definition carries everything the decorator needs.
func (d Definition[T]) Validate() error {
	errs := validation.Errors{
		"name":     validation.Validate(d.Name, validation.Required),
		"singular": validation.Validate(d.Singular, validation.Required),
		"plural":   validation.Validate(d.Plural, validation.Required),
	}
	if err := errs.Filter(); err != nil {
		return err
	}
	if d.ID == nil {
		return errors.New("resourcecache: definition needs an ID extractor")
	}
	return nil
}

// CachedResource decorates a Backend with caching and notifications. All
// cache writes happen through the shared CacheService; the decorator itself
// only tracks which keys it has populated so it can invalidate by prefix.
type CachedResource[T any] struct {
	def      Definition[T]
	base     Backend[T]
	cache    cache.CacheService
	keys     cache.KeySerializer
	notifier Notifier

	// registry tracks the keys this resource has populated. Invalidation
	// walks it instead of the cache itself, so entries owned by other
	// entities are never touched.
	registry *xsync.MapOf[string, struct{}]
}

// New wires a CachedResource. A nil notifier discards notifications.
func New[T any](def Definition[T], base Backend[T], cacheService cache.CacheService, keys cache.KeySerializer, notifier Notifier) (*CachedResource[T], error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &CachedResource[T]{
		def:      def,
		base:     base,
		cache:    cacheService,
		keys:     keys,
		notifier: notifier,
		registry: xsync.NewMapOf[string, struct{}](),
	}, nil
}

// Name returns the entity's cache namespace.
func (c *CachedResource[T]) Name() string {
	return c.def.Name
}

// List returns a page of records, served from the cache when a value-equal
// query is still fresh.
func (c *CachedResource[T]) List(ctx context.Context, params *apiclient.ListParams) (apiclient.ListResult[T], error) {
	key := c.keys.SerializeKey(c.def.Name, opList, params)
	c.trackKey(key)
	return cache.GetOrFetch(ctx, c.cache, key, func(ctx context.Context) (apiclient.ListResult[T], error) {
		return c.base.List(ctx, params)
	})
}

// Get returns a single record, served from the cache when fresh. Ids that
// cannot belong to a persisted record short-circuit with ErrNoID before any
// cache or network access.
func (c *CachedResource[T]) Get(ctx context.Context, id int64) (T, error) {
	if id <= 0 {
		var zero T
		return zero, ErrNoID
	}

	key := c.keys.SerializeKey(c.def.Name, opGet, id)
	c.trackKey(key)
	return cache.GetOrFetch(ctx, c.cache, key, func(ctx context.Context) (T, error) {
		return c.base.Get(ctx, id)
	})
}

// Create posts a new record. On success every cached list query for the
// entity is invalidated and a success notification is emitted; on failure
// the caches stay untouched, a failure notification is emitted, and the
// error is returned.
func (c *CachedResource[T]) Create(ctx context.Context, body any) (T, error) {
	result, err := c.base.Create(ctx, body)
	if err != nil {
		c.notifier.Failure(ctx, FailureMessage(err, ActionCreate, c.def.Singular))
		return result, err
	}

	c.invalidateLists(ctx)
	c.notifier.Success(ctx, successMessage(c.label(result), ActionCreate))
	return result, nil
}

// Update sends a partial update. On success the list caches and the
// record's own detail entry are invalidated.
func (c *CachedResource[T]) Update(ctx context.Context, id int64, patch any) (T, error) {
	result, err := c.base.Update(ctx, id, patch)
	if err != nil {
		c.notifier.Failure(ctx, FailureMessage(err, ActionUpdate, c.def.Singular))
		return result, err
	}

	c.invalidateLists(ctx)
	c.invalidateDetail(ctx, id)
	c.notifier.Success(ctx, successMessage(c.label(result), ActionUpdate))
	return result, nil
}

// Delete removes a record. On success the list caches and the record's
// detail entry are invalidated.
func (c *CachedResource[T]) Delete(ctx context.Context, id int64) error {
	if err := c.base.Delete(ctx, id); err != nil {
		c.notifier.Failure(ctx, FailureMessage(err, ActionDelete, c.def.Singular))
		return err
	}

	c.invalidateLists(ctx)
	c.invalidateDetail(ctx, id)
	c.notifier.Success(ctx, successMessage(c.def.Singular, ActionDelete))
	return nil
}

// CreateMutation returns a fresh lifecycle tracker bound to Create.
func (c *CachedResource[T]) CreateMutation() *Mutation[any, T] {
	return NewMutation(c.Create)
}

// UpdateMutation returns a fresh lifecycle tracker bound to Update.
func (c *CachedResource[T]) UpdateMutation() *Mutation[Patch, T] {
	return NewMutation(func(ctx context.Context, p Patch) (T, error) {
		return c.Update(ctx, p.ID, p.Data)
	})
}

// DeleteMutation returns a fresh lifecycle tracker bound to Delete.
func (c *CachedResource[T]) DeleteMutation() *Mutation[int64, struct{}] {
	return NewMutation(func(ctx context.Context, id int64) (struct{}, error) {
		return struct{}{}, c.Delete(ctx, id)
	})
}

// Patch is the input of an update mutation.
type Patch struct {
	ID   int64
	Data any
}

func (c *CachedResource[T]) label(record T) string {
	if c.def.Label != nil {
		if label := c.def.Label(record); label != "" {
			return label
		}
	}
	return c.def.Singular
}

func (c *CachedResource[T]) trackKey(key string) {
	c.registry.Store(key, struct{}{})
}

// invalidateLists drops every cached list query for this entity. Coarse on
// purpose; see the package documentation.
func (c *CachedResource[T]) invalidateLists(ctx context.Context) {
	c.invalidateByPrefix(ctx, cache.OperationPrefix(c.def.Name, opList))
}

// invalidateDetail drops exactly one record's detail entry. A prefix match
// would be wrong here: the key for id 5 is a prefix of the key for id 55.
func (c *CachedResource[T]) invalidateDetail(ctx context.Context, id int64) {
	key := c.keys.SerializeKey(c.def.Name, opGet, id)
	_ = c.cache.Delete(ctx, key)
	c.registry.Delete(key)
}

func (c *CachedResource[T]) invalidateByPrefix(ctx context.Context, prefix string) {
	var stale []string
	c.registry.Range(func(key string, _ struct{}) bool {
		if strings.HasPrefix(key, prefix) {
			stale = append(stale, key)
		}
		return true
	})

	for _, key := range stale {
		// Delete errors are ignored: a failed delete only means a stale
		// entry may serve until its TTL lapses.
		_ = c.cache.Delete(ctx, key)
		c.registry.Delete(key)
	}
}

// DetailKey returns the cache key of one record's detail entry. Exposed for
// tests and diagnostics.
func (c *CachedResource[T]) DetailKey(id int64) string {
	return c.keys.SerializeKey(c.def.Name, opGet, id)
}
