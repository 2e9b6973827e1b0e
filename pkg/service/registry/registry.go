// Package registry implements the alias registry engine: initialization,
// creation (direct or payment gated), destruction and the public queries.
//
// Every mutation validates fully before it writes, and both indexes are
// written inside one unit of work so they are either updated together or not
// at all. Outgoing token instructions and domain events are emitted only after
// the unit of work commits.
package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/aliasregistry/pkg/cache"
	"github.com/amirasaad/aliasregistry/pkg/config"
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/events"
	"github.com/amirasaad/aliasregistry/pkg/dto"
	"github.com/amirasaad/aliasregistry/pkg/eventbus"
	"github.com/amirasaad/aliasregistry/pkg/metrics"
	"github.com/amirasaad/aliasregistry/pkg/provider/token"
	"github.com/amirasaad/aliasregistry/pkg/repository"
)

// Service is the registry engine.
type Service struct {
	uow     repository.UnitOfWork
	token   token.Contract
	bus     eventbus.Bus
	loader  *cache.Loader
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewService creates a new Service with the provided dependencies. Token,
// EventBus, Cache and Metrics are optional.
func NewService(deps config.Deps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		uow:     deps.Uow,
		token:   deps.Token,
		bus:     deps.EventBus,
		loader:  cache.NewLoader(deps.Cache),
		metrics: deps.Metrics,
		logger:  logger.With("service", "registry"),
	}
}

// Loader exposes the read cache so event handlers can invalidate it.
func (s *Service) Loader() *cache.Loader {
	return s.loader
}

// Init stores the registry configuration. It succeeds exactly once. When the
// payment gate is configured the registry also asks the token contract to
// register it as a receiver.
func (s *Service) Init(ctx context.Context, params alias.InitParams) (out *dto.ConfigRead, err error) {
	defer s.observe("init", time.Now(), &err)
	logger := s.logger.With("gated", params.TokenContract != nil)
	logger.Info("Init started")

	cfg, err := params.Config()
	if err != nil {
		logger.Error("Init failed: invalid params", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		store, err := uow.ConfigStore()
		if err != nil {
			logger.Error("Init failed: ConfigStore error", "error", err)
			return err
		}
		existing, err := store.Load(ctx)
		if err != nil {
			logger.Error("Init failed: config load error", "error", err)
			return err
		}
		if existing != nil {
			return alias.ErrAlreadyInitialized
		}
		return store.Save(ctx, cfg)
	})
	if err != nil {
		logger.Error("Init failed: transaction error", "error", err)
		return nil, err
	}

	s.emit(ctx, logger, events.NewRegistryInitialized(cfg))
	if cfg.Gated() && s.token != nil {
		if terr := s.token.RegisterReceiver(ctx, *cfg.TokenContract); terr != nil {
			logger.Warn("Init: receiver registration not dispatched", "error", terr)
		}
	}

	read := dto.NewConfigRead(cfg)
	logger.Info("Init successful", "maxAliasSize", cfg.MaxAliasSize)
	return &read, nil
}

// Config returns the public projection of the registry configuration.
func (s *Service) Config(ctx context.Context) (out *dto.ConfigRead, err error) {
	defer s.observe("config", time.Now(), &err)
	var cfg *alias.Config
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		cfg, err = loadConfig(ctx, uow)
		return err
	})
	if err != nil {
		s.logger.Error("Config failed", "error", err)
		return nil, err
	}
	read := dto.NewConfigRead(cfg)
	return &read, nil
}

func loadConfig(ctx context.Context, uow repository.UnitOfWork) (*alias.Config, error) {
	store, err := uow.ConfigStore()
	if err != nil {
		return nil, err
	}
	cfg, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, alias.ErrConfigNotFound
	}
	return cfg, nil
}

func (s *Service) emit(ctx context.Context, logger *slog.Logger, e events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, e); err != nil {
		logger.Warn("event not published", "event", e.Type(), "error", err)
	}
}

func (s *Service) invalidate(ctx context.Context, logger *slog.Logger, rec *alias.Record) {
	if err := s.loader.Invalidate(
		ctx,
		cache.AliasKey(rec.Alias),
		cache.OwnerKey(rec.Owner),
	); err != nil {
		logger.Warn("cache invalidation failed", "error", err)
	}
}

func (s *Service) observe(op string, start time.Time, err *error) {
	s.metrics.ObserveOperation(op, start, *err)
}
