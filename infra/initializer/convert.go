package initializer

import (
	"github.com/amirasaad/aliasregistry/pkg/config"
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
)

// InitParamsFromConfig converts the REGISTRY section into an init request.
// The payment gate is configured only when both contract addresses are set.
func InitParamsFromConfig(cfg *config.Registry) alias.InitParams {
	params := alias.InitParams{}
	if cfg == nil {
		return params
	}
	if cfg.MaxAliasSize != 0 {
		size := cfg.MaxAliasSize
		params.MaxAliasSize = &size
	}
	if cfg.TokenContractAddress != "" || cfg.PaymentDestinationAddress != "" {
		params.TokenContract = &alias.ContractRef{
			Address:  alias.Identity(cfg.TokenContractAddress),
			CodeHash: cfg.TokenContractHash,
		}
		params.PaymentDestination = &alias.ContractRef{
			Address:  alias.Identity(cfg.PaymentDestinationAddress),
			CodeHash: cfg.PaymentDestinationHash,
		}
	}
	return params
}
