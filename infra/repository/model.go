package repository

import "time"

// Alias is the row behind the alias/<normalized> index.
type Alias struct {
	Alias     string `gorm:"primaryKey"`
	Owner     string `gorm:"not null"`
	AvatarURL *string
	CreatedAt time.Time
}

// TableName specifies the table name for the Alias model.
func (Alias) TableName() string {
	return "aliases"
}

// AliasOwner is the row behind the owner/<identity> index.
type AliasOwner struct {
	Owner string `gorm:"primaryKey"`
	Alias string `gorm:"not null"`
}

// TableName specifies the table name for the AliasOwner model.
func (AliasOwner) TableName() string {
	return "alias_owners"
}

// configRowID is the only id the registry_config table ever holds.
const configRowID = 1

// RegistryConfig is the singleton configuration row.
type RegistryConfig struct {
	ID                  int `gorm:"primaryKey;autoIncrement:false"`
	MaxAliasSize        int `gorm:"not null"`
	TokenAddress        *string
	TokenCodeHash       *string
	DestinationAddress  *string
	DestinationCodeHash *string
	CreatedAt           time.Time
}

// TableName specifies the table name for the RegistryConfig model.
func (RegistryConfig) TableName() string {
	return "registry_config"
}

// Models lists every model owned by this package, for AutoMigrate.
func Models() []any {
	return []any{&RegistryConfig{}, &Alias{}, &AliasOwner{}}
}
