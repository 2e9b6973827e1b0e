package eventbus

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryEventBus_DispatchesByType(t *testing.T) {
	bus := NewWithMemory(discardLogger(), WithRecording())

	var created, destroyed int
	bus.Register(events.EventTypeAliasCreated, func(ctx context.Context, e events.Event) error {
		created++
		assert.Equal(t, "alice", e.(*events.AliasCreated).Alias)
		return nil
	})
	bus.Register(events.EventTypeAliasDestroyed, func(context.Context, events.Event) error {
		destroyed++
		return nil
	})

	rec := &alias.Record{Alias: "alice", Owner: "secret1alice"}
	require.NoError(t, bus.Emit(context.Background(), events.NewAliasCreated(rec, false)))

	assert.Equal(t, 1, created)
	assert.Equal(t, 0, destroyed)
	assert.Len(t, bus.Published(), 1)

	bus.ClearPublished()
	assert.Empty(t, bus.Published())
}

func TestMemoryEventBus_DoesNotRetainEventsByDefault(t *testing.T) {
	bus := NewWithMemory(discardLogger())
	delivered := 0
	bus.Register(events.EventTypeAliasCreated, func(context.Context, events.Event) error {
		delivered++
		return nil
	})

	for i := 0; i < 100; i++ {
		rec := &alias.Record{Alias: "alice", Owner: "secret1alice"}
		require.NoError(t, bus.Emit(context.Background(), events.NewAliasCreated(rec, false)))
	}

	assert.Equal(t, 100, delivered)
	assert.Empty(t, bus.Published())
	assert.Nil(t, bus.published)
}

func TestMemoryEventBus_HandlerFailuresDoNotPropagate(t *testing.T) {
	bus := NewWithMemory(discardLogger())
	calls := 0
	bus.Register(events.EventTypeAliasCreated, func(context.Context, events.Event) error {
		calls++
		return errors.New("boom")
	})
	bus.Register(events.EventTypeAliasCreated, func(context.Context, events.Event) error {
		calls++
		panic("handler panic")
	})
	bus.Register(events.EventTypeAliasCreated, func(context.Context, events.Event) error {
		calls++
		return nil
	})

	err := bus.Emit(context.Background(), events.NewAliasCreated(&alias.Record{Alias: "a"}, false))
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestEnvelope_RoundTripsRegisteredTypes(t *testing.T) {
	in := events.NewAliasDestroyed(&alias.Record{Alias: "alice", Owner: "secret1alice"})

	raw, err := encodeEnvelope(in)
	require.NoError(t, err)

	eventType, out, err := decodeEnvelope(raw)
	require.NoError(t, err)
	assert.Equal(t, events.EventTypeAliasDestroyed, eventType)
	got, ok := out.(*events.AliasDestroyed)
	require.True(t, ok)
	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, "alice", got.Alias)
}

func TestEnvelope_UnknownType(t *testing.T) {
	_, _, err := decodeEnvelope([]byte(`{"type":"Nope.Event","payload":{}}`))
	assert.ErrorContains(t, err, "unknown event type")

	_, _, err = decodeEnvelope([]byte(`not json`))
	assert.Error(t, err)
}

func TestStreamNames(t *testing.T) {
	assert.Equal(t, "aliasregistry:events:alias:created", streamNameFor("aliasregistry", events.EventTypeAliasCreated))
	assert.Equal(t, "dlq:token:transferrequested", dlqStreamName("", events.EventTypeTokenTransferRequested))
	assert.Equal(t, "reg.events.alias.destroyed", topicNameFor("reg.events", events.EventTypeAliasDestroyed))
	assert.Equal(t, "reg.events.dlq.alias.destroyed", dlqTopicNameFor("reg.events", events.EventTypeAliasDestroyed))
}

func TestGroupFor(t *testing.T) {
	cases := []struct {
		name      string
		instance  string
		eventType events.EventType
		want      string
	}{
		{"invalidation gets an instance group", "host-1", events.EventTypeAliasCreated, "registry.host-1"},
		{"destroy is broadcast too", "host-1", events.EventTypeAliasDestroyed, "registry.host-1"},
		{"token instructions stay shared", "host-1", events.EventTypeTokenTransferRequested, "registry"},
		{"no instance keeps the shared group", "", events.EventTypeAliasCreated, "registry"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, groupFor("registry", tc.instance, BroadcastEvents, tc.eventType))
		})
	}
}

func TestDefaultRedisEventBusConfig_IsInstanceScoped(t *testing.T) {
	a := DefaultRedisEventBusConfig()
	b := DefaultRedisEventBusConfig()
	assert.NotEmpty(t, a.Instance)
	assert.NotEqual(t, a.Instance, b.Instance)
	assert.Equal(t, BroadcastEvents, a.Broadcast)
}
