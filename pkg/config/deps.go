package config

import (
	"log/slog"

	"github.com/amirasaad/aliasregistry/pkg/cache"
	"github.com/amirasaad/aliasregistry/pkg/eventbus"
	"github.com/amirasaad/aliasregistry/pkg/metrics"
	"github.com/amirasaad/aliasregistry/pkg/provider/token"
	"github.com/amirasaad/aliasregistry/pkg/repository"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	Uow      repository.UnitOfWork
	Token    token.Contract
	EventBus eventbus.Bus
	Cache    cache.RecordCache
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	Config   *App
}
