package cache

import (
	"context"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
)

// RecordCache caches resolved alias records for the public lookup paths.
// Misses are never cached; entries are dropped whenever a record is
// created or destroyed.
type RecordCache interface {
	Get(ctx context.Context, key string) (*alias.Record, bool)
	Set(ctx context.Context, key string, rec *alias.Record) error
	Delete(ctx context.Context, keys ...string) error
}

// AliasKey is the cache key for a lookup by normalized alias.
func AliasKey(name string) string {
	return "alias:" + name
}

// OwnerKey is the cache key for a lookup by owner identity.
func OwnerKey(owner alias.Identity) string {
	return "address:" + owner.String()
}
