package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/aliasregistry/pkg/cache"
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	gocache "github.com/patrickmn/go-cache"
)

const (
	DefaultExpiration      = 5 * time.Minute
	DefaultCleanupInterval = 10 * time.Minute
)

// MemoryCache implements cache.RecordCache on go-cache.
type MemoryCache struct {
	cache  *gocache.Cache
	logger *slog.Logger
}

// NewMemoryCache creates an in-memory record cache.
func NewMemoryCache(ttl, cleanup time.Duration, logger *slog.Logger) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultExpiration
	}
	if cleanup <= 0 {
		cleanup = DefaultCleanupInterval
	}
	return &MemoryCache{
		cache:  gocache.New(ttl, cleanup),
		logger: logger.With("cache", "memory"),
	}
}

// Get returns a copy of the cached record.
func (c *MemoryCache) Get(_ context.Context, key string) (*alias.Record, bool) {
	value, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	rec, ok := value.(alias.Record)
	if !ok {
		c.logger.Error("wrong type assertion when getting value", "key", key)
		return nil, false
	}
	c.logger.Debug("cache hit", "key", key)
	return &rec, true
}

// Set stores a copy of rec with the default expiration.
func (c *MemoryCache) Set(_ context.Context, key string, rec *alias.Record) error {
	c.cache.SetDefault(key, *rec)
	return nil
}

// Delete drops the given keys.
func (c *MemoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		c.cache.Delete(key)
	}
	return nil
}

var _ cache.RecordCache = (*MemoryCache)(nil)
