package eventbus

import (
	"os"
	"slices"

	"github.com/amirasaad/aliasregistry/pkg/domain/events"
	"github.com/google/uuid"
)

// BroadcastEvents are delivered to every instance instead of being shared
// across a consumer group. Each instance drops its own cached lookups on
// them, so a load-balanced delivery would leave the other caches stale.
var BroadcastEvents = []events.EventType{
	events.EventTypeAliasCreated,
	events.EventTypeAliasDestroyed,
}

// NewInstanceID names this process for instance-scoped consumer groups.
func NewInstanceID() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "instance"
	}
	return host + "-" + uuid.NewString()[:8]
}

// groupFor returns the consumer group that reads eventType. Broadcast types
// get a group of their own per instance.
func groupFor(group, instance string, broadcast []events.EventType, eventType events.EventType) string {
	if instance == "" || !slices.Contains(broadcast, eventType) {
		return group
	}
	return group + "." + instance
}
