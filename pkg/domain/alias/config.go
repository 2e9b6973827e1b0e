package alias

import (
	"math"

	"github.com/amirasaad/aliasregistry/pkg/domain"
)

// DefaultMaxAliasSize applies when no explicit limit is configured.
const DefaultMaxAliasSize = math.MaxUint16

var (
	// ErrInvalidMaxSize is returned when max_alias_size is not in 1..65535.
	ErrInvalidMaxSize = domain.New(domain.KindValidation, "invalid_max_size", "invalid max_alias_size")
	// ErrInvalidPaymentConfig is returned when the payment gate is half configured.
	ErrInvalidPaymentConfig = domain.New(
		domain.KindValidation,
		"invalid_payment_config",
		"token_contract and payment_destination must be set together",
	)
	// ErrConfigNotFound is returned when the registry has not been initialized.
	ErrConfigNotFound = domain.New(domain.KindNotFound, "config", "registry is not initialized")
	// ErrAlreadyInitialized is returned on a second initialization.
	ErrAlreadyInitialized = domain.New(domain.KindConflict, "already_initialized", "registry already initialized")
)

// ContractRef identifies an external contract.
type ContractRef struct {
	Address  Identity `json:"address"`
	CodeHash string   `json:"contract_hash"`
}

// Config is the registry singleton, written once at initialization.
type Config struct {
	MaxAliasSize       uint16       `json:"max_alias_size"`
	TokenContract      *ContractRef `json:"token_contract,omitempty"`
	PaymentDestination *ContractRef `json:"payment_destination,omitempty"`
}

// Gated reports whether creation requires a verified token payment.
func (c *Config) Gated() bool {
	return c != nil && c.TokenContract != nil
}

// ConfigBuilder provides a fluent API for constructing a validated Config.
type ConfigBuilder struct {
	maxAliasSize       *int
	tokenContract      *ContractRef
	paymentDestination *ContractRef
}

// NewConfig starts a builder with no explicit limits and no payment gate.
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{}
}

// WithMaxAliasSize sets the byte limit. It must fit in 16 bits and be positive.
func (b *ConfigBuilder) WithMaxAliasSize(size int) *ConfigBuilder {
	b.maxAliasSize = &size
	return b
}

// WithTokenContract registers the only contract allowed to report payments.
func (b *ConfigBuilder) WithTokenContract(ref ContractRef) *ConfigBuilder {
	b.tokenContract = &ref
	return b
}

// WithPaymentDestination sets where received payments are forwarded.
func (b *ConfigBuilder) WithPaymentDestination(ref ContractRef) *ConfigBuilder {
	b.paymentDestination = &ref
	return b
}

// Build validates the collected values.
func (b *ConfigBuilder) Build() (*Config, error) {
	size := uint16(DefaultMaxAliasSize)
	if b.maxAliasSize != nil {
		v := *b.maxAliasSize
		if v < 1 || v > math.MaxUint16 {
			return nil, ErrInvalidMaxSize
		}
		size = uint16(v)
	}
	if (b.tokenContract == nil) != (b.paymentDestination == nil) {
		return nil, ErrInvalidPaymentConfig
	}
	if b.tokenContract != nil &&
		(b.tokenContract.Address.IsZero() || b.paymentDestination.Address.IsZero()) {
		return nil, ErrInvalidPaymentConfig
	}
	return &Config{
		MaxAliasSize:       size,
		TokenContract:      b.tokenContract,
		PaymentDestination: b.paymentDestination,
	}, nil
}

// InitParams is the initialization request. A nil MaxAliasSize selects
// DefaultMaxAliasSize; the payment gate is configured by setting both refs.
type InitParams struct {
	MaxAliasSize       *int         `json:"max_alias_size,omitempty"`
	TokenContract      *ContractRef `json:"token_contract,omitempty"`
	PaymentDestination *ContractRef `json:"payment_destination,omitempty"`
}

// Config validates p and builds the configuration it describes.
func (p InitParams) Config() (*Config, error) {
	b := NewConfig()
	if p.MaxAliasSize != nil {
		b.WithMaxAliasSize(*p.MaxAliasSize)
	}
	if p.TokenContract != nil {
		b.WithTokenContract(*p.TokenContract)
	}
	if p.PaymentDestination != nil {
		b.WithPaymentDestination(*p.PaymentDestination)
	}
	return b.Build()
}
