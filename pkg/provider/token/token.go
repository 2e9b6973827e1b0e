// Package token defines the port to the external fungible-token contract.
package token

import (
	"context"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/payment"
)

// Contract is the outbound side of the token integration. Calls are one-shot
// instructions executed by the host after the registry's writes commit; the
// registry never waits on their outcome.
type Contract interface {
	// RegisterReceiver asks the token contract to notify the registry of
	// incoming transfers.
	RegisterReceiver(ctx context.Context, token alias.ContractRef) error

	// Transfer moves funds held by the registry as instructed.
	Transfer(ctx context.Context, t payment.Transfer) error
}
