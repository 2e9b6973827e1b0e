package events

// Event is implemented by everything published on the event bus.
type Event interface {
	Type() string
}

// EventTypes maps a wire type name to a constructor, used by buses that
// decode events from an envelope.
var EventTypes = map[EventType]func() Event{
	EventTypeRegistryInitialized:           func() Event { return &RegistryInitialized{} },
	EventTypeAliasCreated:                  func() Event { return &AliasCreated{} },
	EventTypeAliasDestroyed:                func() Event { return &AliasDestroyed{} },
	EventTypeTokenTransferRequested:        func() Event { return &TokenTransferRequested{} },
	EventTypeReceiverRegistrationRequested: func() Event { return &ReceiverRegistrationRequested{} },
}
