package eventbus

import (
	"fmt"
	"strings"

	"github.com/amirasaad/aliasregistry/pkg/domain/events"
)

// streamNameFor maps "Alias.Created" to "<prefix>:events:alias:created".
func streamNameFor(prefix string, eventType events.EventType) string {
	return nameFor(prefix, "events", eventType)
}

// dlqStreamName returns the DLQ stream name for the given event type.
func dlqStreamName(prefix string, eventType events.EventType) string {
	return nameFor(prefix, "dlq", eventType)
}

func nameFor(prefix, kind string, eventType events.EventType) string {
	name := strings.ToLower(strings.ReplaceAll(eventType.String(), ".", ":"))
	if prefix == "" {
		return fmt.Sprintf("%s:%s", kind, name)
	}
	return fmt.Sprintf("%s:%s:%s", prefix, kind, name)
}

// topicNameFor maps "Alias.Created" to "<prefix>.alias.created".
func topicNameFor(prefix string, eventType events.EventType) string {
	return fmt.Sprintf("%s.%s", prefix, strings.ToLower(eventType.String()))
}

func dlqTopicNameFor(prefix string, eventType events.EventType) string {
	return fmt.Sprintf("%s.dlq.%s", prefix, strings.ToLower(eventType.String()))
}
