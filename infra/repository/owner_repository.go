package repository

import (
	"context"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/repository"
	"gorm.io/gorm"
)

type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository returns the gorm backed owner index.
func NewOwnerRepository(db *gorm.DB) repository.OwnerIndex {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) Get(
	ctx context.Context,
	owner alias.Identity,
) (string, bool, error) {
	var m AliasOwner
	res := r.db.WithContext(ctx).Where("owner = ?", owner.String()).Limit(1).Find(&m)
	if res.Error != nil {
		return "", false, MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return "", false, nil
	}
	return m.Alias, true, nil
}

func (r *ownerRepository) Set(
	ctx context.Context,
	owner alias.Identity,
	name string,
) error {
	return WrapConflict(func() error {
		return r.db.WithContext(ctx).Create(&AliasOwner{Owner: owner.String(), Alias: name}).Error
	}, alias.ErrOwnerHasAlias)
}

func (r *ownerRepository) Remove(
	ctx context.Context,
	owner alias.Identity,
) error {
	return WrapError(func() error {
		return r.db.WithContext(ctx).Where("owner = ?", owner.String()).Delete(&AliasOwner{}).Error
	})
}
