package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	// Registry lifecycle
	EventTypeRegistryInitialized EventType = "Registry.Initialized"

	// Alias events
	EventTypeAliasCreated   EventType = "Alias.Created"
	EventTypeAliasDestroyed EventType = "Alias.Destroyed"

	// Token contract instructions
	EventTypeTokenTransferRequested        EventType = "Token.TransferRequested"
	EventTypeReceiverRegistrationRequested EventType = "Token.ReceiverRegistrationRequested"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}
