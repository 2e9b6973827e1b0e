// Package token relays registry instructions to the token contract through
// the event bus. A separate signer consumes the instruction events and
// submits them on chain.
package token

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/events"
	"github.com/amirasaad/aliasregistry/pkg/domain/payment"
	"github.com/amirasaad/aliasregistry/pkg/eventbus"
	"github.com/amirasaad/aliasregistry/pkg/provider/token"
)

// Relay implements token.Contract by publishing instruction events.
type Relay struct {
	bus    eventbus.Bus
	logger *slog.Logger
}

// NewRelay creates a relay publishing on bus.
func NewRelay(bus eventbus.Bus, logger *slog.Logger) *Relay {
	return &Relay{bus: bus, logger: logger.With("provider", "token-relay")}
}

// RegisterReceiver publishes a ReceiverRegistrationRequested event.
func (r *Relay) RegisterReceiver(ctx context.Context, ref alias.ContractRef) error {
	if ref.Address.IsZero() {
		return fmt.Errorf("token relay: contract address is required")
	}
	if err := r.bus.Emit(ctx, events.NewReceiverRegistrationRequested(ref)); err != nil {
		return fmt.Errorf("token relay: register receiver: %w", err)
	}
	r.logger.Debug("receiver registration relayed", "token", ref.Address)
	return nil
}

// Transfer publishes a TokenTransferRequested event.
func (r *Relay) Transfer(ctx context.Context, t payment.Transfer) error {
	if t.Recipient.Address.IsZero() {
		return fmt.Errorf("token relay: recipient address is required")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("token relay: amount must be positive, got %s", t.Amount)
	}
	if err := r.bus.Emit(ctx, events.NewTokenTransferRequested(t)); err != nil {
		return fmt.Errorf("token relay: transfer: %w", err)
	}
	r.logger.Debug("transfer relayed", "recipient", t.Recipient.Address, "amount", t.Amount.String())
	return nil
}

var _ token.Contract = (*Relay)(nil)
