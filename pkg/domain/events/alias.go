package events

import (
	"time"

	"github.com/google/uuid"
)

// RegistryInitialized is emitted once the configuration singleton is stored.
type RegistryInitialized struct {
	ID            uuid.UUID `json:"id"`
	MaxAliasSize  uint16    `json:"max_alias_size"`
	TokenContract string    `json:"token_contract,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

func (e RegistryInitialized) Type() string { return EventTypeRegistryInitialized.String() }

// AliasCreated is emitted after a Create or a paid Receive commits.
type AliasCreated struct {
	ID        uuid.UUID `json:"id"`
	Alias     string    `json:"alias"`
	Owner     string    `json:"owner"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Paid      bool      `json:"paid"`
	Timestamp time.Time `json:"timestamp"`
}

func (e AliasCreated) Type() string { return EventTypeAliasCreated.String() }

// AliasDestroyed is emitted after a Destroy commits.
type AliasDestroyed struct {
	ID        uuid.UUID `json:"id"`
	Alias     string    `json:"alias"`
	Owner     string    `json:"owner"`
	Timestamp time.Time `json:"timestamp"`
}

func (e AliasDestroyed) Type() string { return EventTypeAliasDestroyed.String() }
