package eventbus

import (
	"context"

	"github.com/amirasaad/aliasregistry/pkg/domain/events"
)

// HandlerFunc processes one event.
type HandlerFunc func(ctx context.Context, e events.Event) error

// Bus defines the contract for publishing and subscribing to domain events.
type Bus interface {
	Emit(ctx context.Context, e events.Event) error
	Register(eventType events.EventType, handler HandlerFunc)
}
