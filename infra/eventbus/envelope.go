package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/amirasaad/aliasregistry/pkg/domain/events"
	"github.com/amirasaad/aliasregistry/pkg/eventbus"
)

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func encodeEnvelope(event events.Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	envBytes, err := json.Marshal(envelope{Type: event.Type(), Payload: data})
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	return envBytes, nil
}

// decodeEnvelope rebuilds a typed event using the events.EventTypes registry.
func decodeEnvelope(raw []byte) (events.EventType, events.Event, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	eventType := events.EventType(env.Type)
	constructor, ok := events.EventTypes[eventType]
	if !ok {
		return eventType, nil, fmt.Errorf("unknown event type %q", env.Type)
	}
	evt := constructor()
	if err := json.Unmarshal(env.Payload, evt); err != nil {
		return eventType, nil, fmt.Errorf("unmarshal %s payload: %w", env.Type, err)
	}
	return eventType, evt, nil
}

// executeHandlers runs every handler, recovering panics. It reports whether
// all handlers succeeded.
func executeHandlers(
	ctx context.Context,
	logger *slog.Logger,
	evt events.Event,
	handlers []eventbus.HandlerFunc,
) bool {
	success := true
	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					success = false
					logger.Error("handler panic recovered", "panic", r, "event_type", evt.Type())
				}
			}()
			if err := handler(ctx, evt); err != nil {
				success = false
				logger.Error("handler error", "error", err, "event_type", evt.Type())
			}
		}()
	}
	return success
}
