//go:build !kafka
// +build !kafka

package eventbus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/aliasregistry/pkg/domain/events"
	"github.com/amirasaad/aliasregistry/pkg/eventbus"
)

type KafkaEventBusConfig struct {
	GroupID     string
	TopicPrefix string
	Instance    string
	Broadcast   []events.EventType
}

type KafkaEventBus struct{}

func NewWithKafka(
	brokers []string,
	logger *slog.Logger,
	config *KafkaEventBusConfig,
) (*KafkaEventBus, error) {
	return nil, fmt.Errorf("kafka event bus: build with -tags kafka to enable")
}

func (b *KafkaEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
}

func (b *KafkaEventBus) Emit(ctx context.Context, event events.Event) error {
	return fmt.Errorf("kafka event bus: build with -tags kafka to enable")
}

func (b *KafkaEventBus) Close() error {
	return nil
}

var _ eventbus.Bus = (*KafkaEventBus)(nil)
