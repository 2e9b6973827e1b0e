package events

import (
	"time"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/payment"
	"github.com/google/uuid"
)

// NewRegistryInitialized builds the event for a stored configuration.
func NewRegistryInitialized(cfg *alias.Config) *RegistryInitialized {
	e := &RegistryInitialized{
		ID:           uuid.New(),
		MaxAliasSize: cfg.MaxAliasSize,
		Timestamp:    time.Now().UTC(),
	}
	if cfg.TokenContract != nil {
		e.TokenContract = cfg.TokenContract.Address.String()
	}
	return e
}

// NewAliasCreated builds the event for a committed record.
func NewAliasCreated(rec *alias.Record, paid bool) *AliasCreated {
	return &AliasCreated{
		ID:        uuid.New(),
		Alias:     rec.Alias,
		Owner:     rec.Owner.String(),
		AvatarURL: rec.AvatarURL,
		Paid:      paid,
		Timestamp: time.Now().UTC(),
	}
}

// NewAliasDestroyed builds the event for a removed record.
func NewAliasDestroyed(rec *alias.Record) *AliasDestroyed {
	return &AliasDestroyed{
		ID:        uuid.New(),
		Alias:     rec.Alias,
		Owner:     rec.Owner.String(),
		Timestamp: time.Now().UTC(),
	}
}

// NewTokenTransferRequested wraps an outgoing transfer instruction.
func NewTokenTransferRequested(t payment.Transfer) *TokenTransferRequested {
	return &TokenTransferRequested{
		ID:                uuid.New(),
		TokenAddress:      t.Contract.Address.String(),
		TokenCodeHash:     t.Contract.CodeHash,
		RecipientAddress:  t.Recipient.Address.String(),
		RecipientCodeHash: t.Recipient.CodeHash,
		Amount:            t.Amount.String(),
		Memo:              t.Memo,
		Timestamp:         time.Now().UTC(),
	}
}

// NewReceiverRegistrationRequested builds the receiver registration request
// for the given token contract.
func NewReceiverRegistrationRequested(token alias.ContractRef) *ReceiverRegistrationRequested {
	return &ReceiverRegistrationRequested{
		ID:            uuid.New(),
		TokenAddress:  token.Address.String(),
		TokenCodeHash: token.CodeHash,
		Timestamp:     time.Now().UTC(),
	}
}
