// Package di owns the construction of the shared cache plumbing. The query
// cache is deliberately not ambient global state: tests and applications
// build their own Container and get a fully isolated cache.
package di

import (
	"github.com/nordkost/go-erp-client/cache"
	"github.com/nordkost/go-erp-client/resourcecache"
)

// Container holds the process-wide singletons shared by every cached
// resource: the cache service, the key serializer, and the notifier.
type Container struct {
	cacheService  cache.CacheService
	keySerializer cache.KeySerializer
	notifier      resourcecache.Notifier
	config        cache.Config
}

// New builds a Container from cfg. A nil notifier discards notifications.
func New(cfg cache.Config, notifier resourcecache.Notifier) (*Container, error) {
	cacheService, err := cache.NewCacheService(cfg)
	if err != nil {
		return nil, err
	}
	if notifier == nil {
		notifier = resourcecache.NopNotifier{}
	}

	return &Container{
		cacheService:  cacheService,
		keySerializer: cache.NewDefaultKeySerializer(),
		notifier:      notifier,
		config:        cfg,
	}, nil
}

// NewWithDefaults builds a Container with the default cache configuration
// and no notifications.
func NewWithDefaults() (*Container, error) {
	return New(cache.DefaultConfig(), nil)
}

// CacheService returns the shared cache service instance.
func (c *Container) CacheService() cache.CacheService {
	return c.cacheService
}

// KeySerializer returns the shared key serializer instance.
func (c *Container) KeySerializer() cache.KeySerializer {
	return c.keySerializer
}

// Notifier returns the shared notifier instance.
func (c *Container) Notifier() resourcecache.Notifier {
	return c.notifier
}

// Config returns a copy of the cache configuration in use.
func (c *Container) Config() cache.Config {
	return c.config
}

// NewCachedResource wires a cached resource against the container's shared
// plumbing. Go methods cannot carry type parameters, hence the package-level
// function.
func NewCachedResource[T any](c *Container, base resourcecache.Backend[T], def resourcecache.Definition[T]) (*resourcecache.CachedResource[T], error) {
	return resourcecache.New(def, base, c.cacheService, c.keySerializer, c.notifier)
}
