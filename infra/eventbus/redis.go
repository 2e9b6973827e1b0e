package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/aliasregistry/pkg/domain/events"
	"github.com/amirasaad/aliasregistry/pkg/eventbus"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisEventBusConfig tunes the Redis Streams bus.
type RedisEventBusConfig struct {
	// Prefix namespaces every stream name.
	Prefix string
	// Group is the consumer group shared by all instances of the service.
	Group string

	// Instance names this process. Broadcast event types are read through
	// a group of their own, Group + "." + Instance, so every instance sees
	// every event. An empty Instance disables broadcast groups.
	Instance  string
	Broadcast []events.EventType

	Block time.Duration
}

// DefaultRedisEventBusConfig returns the defaults used when no config is given.
func DefaultRedisEventBusConfig() *RedisEventBusConfig {
	return &RedisEventBusConfig{
		Prefix:    "aliasregistry",
		Group:     "aliasregistry",
		Instance:  NewInstanceID(),
		Broadcast: BroadcastEvents,
		Block:     5 * time.Second,
	}
}

// RedisEventBus publishes events to one Redis stream per event type and
// consumes them through a consumer group. Events whose handlers fail are
// copied to a per-type DLQ stream and acknowledged.
type RedisEventBus struct {
	client *redis.Client
	config *RedisEventBusConfig
	logger *slog.Logger

	handlers    map[events.EventType][]eventbus.HandlerFunc
	handlersMtx sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWithRedis creates a new Redis-backed event bus.
// url: Redis connection URL (e.g., "redis://localhost:6379/0").
func NewWithRedis(url string, logger *slog.Logger, config *RedisEventBusConfig) (*RedisEventBus, error) {
	if url == "" {
		return nil, fmt.Errorf("redis event bus: url is required")
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis event bus: invalid URL: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis event bus: connection failed: %w", err)
	}
	return NewWithRedisClient(client, logger, config), nil
}

// NewWithRedisClient wraps an existing client.
func NewWithRedisClient(client *redis.Client, logger *slog.Logger, config *RedisEventBusConfig) *RedisEventBus {
	if config == nil {
		config = DefaultRedisEventBusConfig()
	}
	if config.Block <= 0 {
		config.Block = 5 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisEventBus{
		client:   client,
		config:   config,
		logger:   logger.With("bus", "redis"),
		handlers: make(map[events.EventType][]eventbus.HandlerFunc),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Emit publishes an event to the stream of its type.
func (b *RedisEventBus) Emit(ctx context.Context, event events.Event) error {
	envBytes, err := encodeEnvelope(event)
	if err != nil {
		return fmt.Errorf("redis event bus: %w", err)
	}
	stream := streamNameFor(b.config.Prefix, events.EventType(event.Type()))
	if err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{"event": string(envBytes)},
	}).Err(); err != nil {
		b.logger.Error("failed to emit event", "error", err, "type", event.Type())
		return fmt.Errorf("redis event bus: emit failed: %w", err)
	}
	b.logger.Debug("event emitted", "type", event.Type(), "stream", stream)
	return nil
}

// Register adds a handler. The first handler of a type starts its consumer.
func (b *RedisEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.handlersMtx.Lock()
	first := len(b.handlers[eventType]) == 0
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.handlersMtx.Unlock()
	if !first {
		return
	}

	stream := streamNameFor(b.config.Prefix, eventType)
	group := b.groupFor(eventType)
	// An instance group only needs events emitted after it joined.
	start := "0"
	if group != b.config.Group {
		start = "$"
	}
	err := b.client.XGroupCreateMkStream(b.ctx, stream, group, start).Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		b.logger.Error("failed to create consumer group", "error", err, "stream", stream)
		return
	}

	consumer := fmt.Sprintf("consumer-%s", uuid.NewString())
	b.logger.Info("registering handler", "event_type", eventType, "group", group, "consumer", consumer)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.consume(eventType, stream, group, consumer)
	}()
}

func (b *RedisEventBus) groupFor(eventType events.EventType) string {
	return groupFor(b.config.Group, b.config.Instance, b.config.Broadcast, eventType)
}

func (b *RedisEventBus) consume(eventType events.EventType, stream, group, consumer string) {
	for {
		res, err := b.client.XReadGroup(b.ctx, &redis.XReadGroupArgs{
			Group:    group,
			Consumer: consumer,
			Streams:  []string{stream, ">"},
			Count:    10,
			Block:    b.config.Block,
		}).Result()
		if b.ctx.Err() != nil {
			return
		}
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				b.logger.Error("error reading from stream", "error", err, "stream", stream)
				time.Sleep(time.Second)
			}
			continue
		}

		for _, s := range res {
			for _, msg := range s.Messages {
				b.process(eventType, stream, group, msg)
			}
		}
	}
}

func (b *RedisEventBus) process(eventType events.EventType, stream, group string, msg redis.XMessage) {
	defer func() {
		if err := b.client.XAck(b.ctx, stream, group, msg.ID).Err(); err != nil {
			b.logger.Error("failed to acknowledge message", "error", err, "msg_id", msg.ID)
		}
	}()

	raw, ok := msg.Values["event"].(string)
	if !ok {
		b.pushToDLQ(eventType, msg.Values)
		return
	}
	_, evt, err := decodeEnvelope([]byte(raw))
	if err != nil {
		b.logger.Error("failed to decode event", "error", err, "msg_id", msg.ID)
		b.pushToDLQ(eventType, msg.Values)
		return
	}

	b.handlersMtx.RLock()
	handlers := append([]eventbus.HandlerFunc{}, b.handlers[eventType]...)
	b.handlersMtx.RUnlock()

	if !executeHandlers(b.ctx, b.logger, evt, handlers) {
		b.pushToDLQ(eventType, msg.Values)
	}
}

func (b *RedisEventBus) pushToDLQ(eventType events.EventType, values map[string]any) {
	dlq := dlqStreamName(b.config.Prefix, eventType)
	if err := b.client.XAdd(b.ctx, &redis.XAddArgs{Stream: dlq, Values: values}).Err(); err != nil {
		b.logger.Error("failed to push to DLQ", "error", err, "stream", dlq)
		return
	}
	b.logger.Warn("event pushed to DLQ", "stream", dlq)
}

// Close stops the consumers, removes this instance's broadcast groups and
// closes the client.
func (b *RedisEventBus) Close() error {
	b.cancel()
	b.wg.Wait()

	b.handlersMtx.RLock()
	registered := make([]events.EventType, 0, len(b.handlers))
	for eventType := range b.handlers {
		registered = append(registered, eventType)
	}
	b.handlersMtx.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for _, eventType := range registered {
		group := b.groupFor(eventType)
		if group == b.config.Group {
			continue
		}
		stream := streamNameFor(b.config.Prefix, eventType)
		if err := b.client.XGroupDestroy(ctx, stream, group).Err(); err != nil {
			b.logger.Warn("failed to remove instance group", "error", err, "stream", stream, "group", group)
		}
	}
	return b.client.Close()
}

var _ eventbus.Bus = (*RedisEventBus)(nil)
