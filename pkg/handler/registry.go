// Package handler holds the event bus subscribers of the registry.
package handler

import (
	"context"
	"log/slog"

	"github.com/amirasaad/aliasregistry/pkg/cache"
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/events"
	"github.com/amirasaad/aliasregistry/pkg/eventbus"
	"github.com/amirasaad/aliasregistry/pkg/metrics"
)

// Invalidator drops cached lookups.
type Invalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}

// Deps are the collaborators of the registry subscribers. Every field is
// optional.
type Deps struct {
	Loader  Invalidator
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Register subscribes the registry handlers to bus:
//   - alias lifecycle events drop cached lookups. Distributed buses read
//     these through a consumer group per instance, so every instance
//     drops its own cache;
//   - token instructions are logged and counted once per shared group.
func Register(bus eventbus.Bus, deps Deps) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracker := NewIdempotencyTracker()
	wrap := func(name string, h eventbus.HandlerFunc) eventbus.HandlerFunc {
		return WithIdempotency(h, tracker, EventID, name, logger)
	}

	invalidate := InvalidateCache(deps.Loader)
	bus.Register(events.EventTypeAliasCreated, wrap("cache_invalidation", invalidate))
	bus.Register(events.EventTypeAliasDestroyed, wrap("cache_invalidation", invalidate))

	instructions := TokenInstructions(deps.Metrics, logger)
	bus.Register(events.EventTypeTokenTransferRequested, wrap("token_instructions", instructions))
	bus.Register(events.EventTypeReceiverRegistrationRequested, wrap("token_instructions", instructions))
}

// InvalidateCache drops both lookup keys of the alias named by the event.
func InvalidateCache(loader Invalidator) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		if loader == nil {
			return nil
		}
		var name, owner string
		switch ev := e.(type) {
		case *events.AliasCreated:
			name, owner = ev.Alias, ev.Owner
		case *events.AliasDestroyed:
			name, owner = ev.Alias, ev.Owner
		default:
			return nil
		}
		return loader.Invalidate(ctx, cache.AliasKey(name), cache.OwnerKey(alias.Identity(owner)))
	}
}

// TokenInstructions records outgoing token contract instructions.
func TokenInstructions(m *metrics.Metrics, logger *slog.Logger) eventbus.HandlerFunc {
	return func(_ context.Context, e events.Event) error {
		switch ev := e.(type) {
		case *events.TokenTransferRequested:
			logger.Info("token transfer queued",
				"token", ev.TokenAddress,
				"recipient", ev.RecipientAddress,
				"amount", ev.Amount,
				"memo", ev.Memo,
			)
		case *events.ReceiverRegistrationRequested:
			logger.Info("token receiver registration queued", "token", ev.TokenAddress)
		default:
			return nil
		}
		m.TokenInstruction(e.Type())
		return nil
	}
}
