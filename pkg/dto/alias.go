package dto

import (
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/payment"
)

// AliasAttributes is the public projection of a record.
type AliasAttributes struct {
	Alias     string  `json:"alias"`
	AvatarURL *string `json:"avatar_url"`
	Address   string  `json:"address"`
}

// SearchResponse is returned by Search and Show.
type SearchResponse struct {
	Type       string          `json:"type"`
	Attributes AliasAttributes `json:"attributes"`
}

// ConfigRead is the public projection of the registry configuration.
type ConfigRead struct {
	MaxAliasSize       uint16             `json:"max_alias_size"`
	Gated              bool               `json:"gated"`
	TokenContract      *alias.ContractRef `json:"token_contract,omitempty"`
	PaymentDestination *alias.ContractRef `json:"payment_destination,omitempty"`
	Price              string             `json:"price,omitempty"`
}

// Answer is the structured result of a mutating operation.
type Answer struct {
	Status   string             `json:"status"`
	Alias    *AliasAttributes   `json:"alias,omitempty"`
	Messages []payment.Transfer `json:"messages,omitempty"`
}

const (
	// StatusSuccess marks a committed operation.
	StatusSuccess = "success"
)

// NewAliasAttributes maps a domain record to its public projection.
func NewAliasAttributes(rec *alias.Record) AliasAttributes {
	return AliasAttributes{
		Alias:     rec.Alias,
		AvatarURL: rec.AvatarURL,
		Address:   rec.Owner.String(),
	}
}

// NewConfigRead maps the registry configuration to its public projection.
func NewConfigRead(cfg *alias.Config) ConfigRead {
	out := ConfigRead{
		MaxAliasSize:       cfg.MaxAliasSize,
		Gated:              cfg.Gated(),
		TokenContract:      cfg.TokenContract,
		PaymentDestination: cfg.PaymentDestination,
	}
	if cfg.Gated() {
		out.Price = payment.FixedPrice.String()
	}
	return out
}
