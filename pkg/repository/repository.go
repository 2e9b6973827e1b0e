package repository

import (
	"context"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
)

// AliasIndex is the primary store: normalized alias → record.
// Absence is not an error: Get returns (nil, nil). Set refuses to overwrite a
// bound key (alias.ErrAliasTaken); Remove of a missing key is a no-op.
type AliasIndex interface {
	Get(ctx context.Context, name string) (*alias.Record, error)
	Set(ctx context.Context, rec *alias.Record) error
	Remove(ctx context.Context, name string) error
}

// OwnerIndex is the reverse store: owner identity → normalized alias. Set
// refuses to overwrite a bound owner (alias.ErrOwnerHasAlias).
type OwnerIndex interface {
	Get(ctx context.Context, owner alias.Identity) (name string, ok bool, err error)
	Set(ctx context.Context, owner alias.Identity, name string) error
	Remove(ctx context.Context, owner alias.Identity) error
}

// ConfigStore holds the registry configuration singleton. Load returns
// (nil, nil) before initialization; a second Save fails with
// alias.ErrAlreadyInitialized.
type ConfigStore interface {
	Load(ctx context.Context) (*alias.Config, error)
	Save(ctx context.Context, cfg *alias.Config) error
}
