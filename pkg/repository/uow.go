package repository

import (
	"context"
)

// UnitOfWork defines the contract for transactional work and type-safe repository access.
//
// All index writes of one registry operation happen inside a single Do call, so
// the alias and owner indexes are either both updated or both untouched.
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// The provided function receives a UnitOfWork for repository access.
	// If the function returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	AliasIndex() (AliasIndex, error)
	OwnerIndex() (OwnerIndex, error)
	ConfigStore() (ConfigStore, error)
}
