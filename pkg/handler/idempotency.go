package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/aliasregistry/pkg/domain/events"
	"github.com/amirasaad/aliasregistry/pkg/eventbus"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// DefaultIdempotencyTTL is how long a processed key is remembered. It only
// needs to outlast the redelivery window of the bus.
const DefaultIdempotencyTTL = time.Hour

// KeyExtractor extracts an idempotency key from an event
type KeyExtractor func(events.Event) string

// IdempotencyTracker tracks processed events by key. Keys expire after the
// tracker's TTL so memory stays bounded on a long-running process.
type IdempotencyTracker struct {
	processed *gocache.Cache
	inflight  singleflight.Group
}

// NewIdempotencyTracker creates a tracker that remembers keys for
// DefaultIdempotencyTTL.
func NewIdempotencyTracker() *IdempotencyTracker {
	return NewIdempotencyTrackerWithTTL(DefaultIdempotencyTTL)
}

// NewIdempotencyTrackerWithTTL creates a tracker that forgets keys after ttl.
func NewIdempotencyTrackerWithTTL(ttl time.Duration) *IdempotencyTracker {
	return &IdempotencyTracker{processed: gocache.New(ttl, ttl)}
}

// Seen reports whether key has been processed successfully.
func (t *IdempotencyTracker) Seen(key string) bool {
	_, ok := t.processed.Get(key)
	return ok
}

// Len returns the number of keys currently remembered, expired ones included
// until the next cleanup.
func (t *IdempotencyTracker) Len() int {
	return t.processed.ItemCount()
}

// EventID is the default KeyExtractor: the ID of every registry event.
func EventID(e events.Event) string {
	switch ev := e.(type) {
	case *events.RegistryInitialized:
		return ev.ID.String()
	case *events.AliasCreated:
		return ev.ID.String()
	case *events.AliasDestroyed:
		return ev.ID.String()
	case *events.TokenTransferRequested:
		return ev.ID.String()
	case *events.ReceiverRegistrationRequested:
		return ev.ID.String()
	}
	return ""
}

// WithIdempotency wraps a handler so that redelivered events are skipped.
// Concurrent deliveries of one key wait on a single attempt; a key is marked
// processed only when the handler succeeds.
func WithIdempotency(
	handler eventbus.HandlerFunc,
	tracker *IdempotencyTracker,
	keyExtractor KeyExtractor,
	handlerName string,
	logger *slog.Logger,
) eventbus.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, e events.Event) error {
		key := keyExtractor(e)
		if key == "" {
			return handler(ctx, e)
		}

		log := logger.With(
			"handler", handlerName,
			"event_type", e.Type(),
			"idempotency_key", key,
		)

		if tracker.Seen(key) {
			log.Info("🔁 [SKIP] Event already processed")
			return nil
		}

		_, err, _ := tracker.inflight.Do(key, func() (any, error) {
			if tracker.Seen(key) {
				return nil, nil
			}
			if err := handler(ctx, e); err != nil {
				return nil, err
			}
			tracker.processed.SetDefault(key, struct{}{})
			return nil, nil
		})
		return err
	}
}
