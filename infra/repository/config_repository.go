package repository

import (
	"context"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/repository"
	"gorm.io/gorm"
)

type configRepository struct {
	db *gorm.DB
}

// NewConfigRepository returns the gorm backed configuration store.
func NewConfigRepository(db *gorm.DB) repository.ConfigStore {
	return &configRepository{db: db}
}

func (r *configRepository) Load(ctx context.Context) (*alias.Config, error) {
	var m RegistryConfig
	res := r.db.WithContext(ctx).Where("id = ?", configRowID).Limit(1).Find(&m)
	if res.Error != nil {
		return nil, MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return mapConfigToDomain(&m), nil
}

func (r *configRepository) Save(ctx context.Context, cfg *alias.Config) error {
	m := &RegistryConfig{
		ID:           configRowID,
		MaxAliasSize: int(cfg.MaxAliasSize),
	}
	if cfg.TokenContract != nil {
		addr := cfg.TokenContract.Address.String()
		m.TokenAddress = &addr
		m.TokenCodeHash = &cfg.TokenContract.CodeHash
	}
	if cfg.PaymentDestination != nil {
		addr := cfg.PaymentDestination.Address.String()
		m.DestinationAddress = &addr
		m.DestinationCodeHash = &cfg.PaymentDestination.CodeHash
	}
	return WrapConflict(func() error {
		return r.db.WithContext(ctx).Create(m).Error
	}, alias.ErrAlreadyInitialized)
}

func mapConfigToDomain(m *RegistryConfig) *alias.Config {
	cfg := &alias.Config{MaxAliasSize: uint16(m.MaxAliasSize)}
	cfg.TokenContract = contractRef(m.TokenAddress, m.TokenCodeHash)
	cfg.PaymentDestination = contractRef(m.DestinationAddress, m.DestinationCodeHash)
	return cfg
}

func contractRef(address, codeHash *string) *alias.ContractRef {
	if address == nil {
		return nil
	}
	ref := &alias.ContractRef{Address: alias.Identity(*address)}
	if codeHash != nil {
		ref.CodeHash = *codeHash
	}
	return ref
}
