package repository

import (
	"context"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/repository"
	"gorm.io/gorm"
)

type aliasRepository struct {
	db *gorm.DB
}

// NewAliasRepository returns the gorm backed alias index.
func NewAliasRepository(db *gorm.DB) repository.AliasIndex {
	return &aliasRepository{db: db}
}

func (r *aliasRepository) Get(
	ctx context.Context,
	name string,
) (*alias.Record, error) {
	var m Alias
	res := r.db.WithContext(ctx).Where("alias = ?", name).Limit(1).Find(&m)
	if res.Error != nil {
		return nil, MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return mapAliasToDomain(&m), nil
}

func (r *aliasRepository) Set(
	ctx context.Context,
	rec *alias.Record,
) error {
	m := &Alias{
		Alias:     rec.Alias,
		Owner:     rec.Owner.String(),
		AvatarURL: rec.AvatarURL,
		CreatedAt: rec.CreatedAt,
	}
	return WrapConflict(func() error {
		return r.db.WithContext(ctx).Create(m).Error
	}, alias.ErrAliasTaken)
}

func (r *aliasRepository) Remove(
	ctx context.Context,
	name string,
) error {
	return WrapError(func() error {
		return r.db.WithContext(ctx).Where("alias = ?", name).Delete(&Alias{}).Error
	})
}

func mapAliasToDomain(m *Alias) *alias.Record {
	return &alias.Record{
		Alias:     m.Alias,
		Owner:     alias.Identity(m.Owner),
		AvatarURL: m.AvatarURL,
		CreatedAt: m.CreatedAt,
	}
}
