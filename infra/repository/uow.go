package repository

import (
	"context"

	"github.com/amirasaad/aliasregistry/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one
// abstraction, so every index touched by an operation shares one session.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a transaction. Returning an error from fn rolls back every
// write made through the provided UnitOfWork.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// AliasIndex returns the alias index bound to the current session.
func (u *UoW) AliasIndex() (repository.AliasIndex, error) {
	return NewAliasRepository(u.session()), nil
}

// OwnerIndex returns the owner index bound to the current session.
func (u *UoW) OwnerIndex() (repository.OwnerIndex, error) {
	return NewOwnerRepository(u.session()), nil
}

// ConfigStore returns the configuration store bound to the current session.
func (u *UoW) ConfigStore() (repository.ConfigStore, error) {
	return NewConfigRepository(u.session()), nil
}
