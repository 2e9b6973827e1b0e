// Package app wires the registry services and subscribes their event
// handlers to the bus.
package app

import (
	"github.com/amirasaad/aliasregistry/pkg/handler"
)

// setupEventBus registers all event handlers with the configured bus.
func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	if bus == nil {
		return
	}
	handler.Register(bus, handler.Deps{
		Loader:  a.RegistryService.Loader(),
		Metrics: a.Deps.Metrics,
		Logger:  a.Deps.Logger,
	})
}
