package initializer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/aliasregistry/infra"
	infracache "github.com/amirasaad/aliasregistry/infra/cache"
	infra_eventbus "github.com/amirasaad/aliasregistry/infra/eventbus"
	infra_token "github.com/amirasaad/aliasregistry/infra/provider/token"
	infra_repository "github.com/amirasaad/aliasregistry/infra/repository"
	"github.com/amirasaad/aliasregistry/infra/repository/memory"
	"github.com/amirasaad/aliasregistry/pkg/cache"
	"github.com/amirasaad/aliasregistry/pkg/config"
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/eventbus"
	"github.com/amirasaad/aliasregistry/pkg/metrics"
	"github.com/amirasaad/aliasregistry/pkg/repository"
	"github.com/amirasaad/aliasregistry/pkg/service/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// Closer releases what InitializeDependencies opened.
type Closer func()

// InitializeDependencies initializes all the application dependencies.
func InitializeDependencies(cfg *config.App) (
	deps *config.Deps,
	closer Closer,
	err error,
) {
	logger := setupLogger(cfg.Log)
	return initialize(cfg, logger, prometheus.DefaultRegisterer)
}

func initialize(cfg *config.App, logger *slog.Logger, reg prometheus.Registerer) (
	deps *config.Deps,
	closer Closer,
	err error,
) {
	var closers []io.Closer
	closer = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if cerr := closers[i].Close(); cerr != nil {
				logger.Warn("close failed", "error", cerr)
			}
		}
	}
	defer func() {
		if err != nil {
			closer()
		}
	}()

	deps = &config.Deps{Logger: logger, Config: cfg}

	deps.Uow, err = initStorage(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	bus, err := initEventBus(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	deps.EventBus = bus
	if c, ok := bus.(io.Closer); ok {
		closers = append(closers, c)
	}

	var cacheCloser io.Closer
	deps.Cache, cacheCloser, err = initCache(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if cacheCloser != nil {
		closers = append(closers, cacheCloser)
	}

	deps.Token = infra_token.NewRelay(bus, logger)
	deps.Metrics = metrics.New(metrics.WithRegistry(reg))
	return deps, closer, nil
}

func initStorage(cfg *config.App, logger *slog.Logger) (repository.UnitOfWork, error) {
	if cfg.DB == nil || cfg.DB.Driver == infra.DriverMemory {
		logger.Info("Using in-memory storage")
		return memory.NewUoW(memory.New()), nil
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	if err := infra.Migrate(db, cfg.DB.Driver); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		return nil, fmt.Errorf("migrate: %w", err)
	}
	logger.Info("Database ready", "driver", cfg.DB.Driver)
	return infra_repository.NewUoW(db), nil
}

// initEventBus picks the bus from EVENT_BUS_DRIVER. A misconfigured driver
// is an error; an unreachable broker falls back to the in-memory bus.
func initEventBus(cfg *config.App, logger *slog.Logger) (eventbus.Bus, error) {
	driver := "memory"
	if cfg.EventBus != nil && cfg.EventBus.Driver != "" {
		driver = cfg.EventBus.Driver
	}

	switch driver {
	case "memory":
		return infra_eventbus.NewWithMemory(logger), nil
	case "redis":
		if cfg.Redis == nil || cfg.Redis.URL == "" {
			return nil, errors.New("event bus driver redis requires REDIS_URL")
		}
		busCfg := infra_eventbus.DefaultRedisEventBusConfig()
		busCfg.Prefix = cfg.EventBus.Stream
		busCfg.Group = cfg.EventBus.Group
		if cfg.EventBus.Instance != "" {
			busCfg.Instance = cfg.EventBus.Instance
		}
		bus, err := infra_eventbus.NewWithRedis(cfg.Redis.URL, logger, busCfg)
		if err != nil {
			logger.Warn("Redis event bus unavailable, falling back to memory", "error", err)
			return infra_eventbus.NewWithMemory(logger), nil
		}
		return bus, nil
	case "kafka":
		if cfg.Kafka == nil || len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Brokers[0] == "" {
			return nil, errors.New("event bus driver kafka requires KAFKA_BROKERS")
		}
		instance := infra_eventbus.NewInstanceID()
		if cfg.EventBus != nil && cfg.EventBus.Instance != "" {
			instance = cfg.EventBus.Instance
		}
		bus, err := infra_eventbus.NewWithKafka(cfg.Kafka.Brokers, logger, &infra_eventbus.KafkaEventBusConfig{
			GroupID:     cfg.Kafka.GroupID,
			TopicPrefix: cfg.Kafka.Topic,
			Instance:    instance,
			Broadcast:   infra_eventbus.BroadcastEvents,
		})
		if err != nil {
			logger.Warn("Kafka event bus unavailable, falling back to memory", "error", err)
			return infra_eventbus.NewWithMemory(logger), nil
		}
		return bus, nil
	default:
		return nil, fmt.Errorf("unsupported EVENT_BUS_DRIVER %q", driver)
	}
}

func initCache(cfg *config.App, logger *slog.Logger) (cache.RecordCache, io.Closer, error) {
	if cfg.Cache == nil {
		return nil, nil, nil
	}
	switch cfg.Cache.Driver {
	case "none", "":
		return nil, nil, nil
	case "memory":
		return infracache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.Cleanup, logger), nil, nil
	case "redis":
		if cfg.Redis == nil || cfg.Redis.URL == "" {
			return nil, nil, errors.New("cache driver redis requires REDIS_URL")
		}
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("redis cache: invalid URL: %w", err)
		}
		opt.PoolSize = cfg.Redis.PoolSize
		opt.DialTimeout = cfg.Redis.DialTimeout
		opt.ReadTimeout = cfg.Redis.ReadTimeout
		opt.WriteTimeout = cfg.Redis.WriteTimeout
		client := redis.NewClient(opt)
		prefix := cfg.Redis.KeyPrefix + cfg.Cache.Prefix
		return infracache.NewRedisCache(client, prefix, cfg.Cache.TTL, logger), client, nil
	default:
		return nil, nil, fmt.Errorf("unsupported CACHE_DRIVER %q", cfg.Cache.Driver)
	}
}

// AutoInit stores the REGISTRY section as the registry configuration when
// REGISTRY_AUTO_INIT is set. An already initialized registry is left alone.
func AutoInit(ctx context.Context, svc *registry.Service, cfg *config.Registry, logger *slog.Logger) error {
	if cfg == nil || !cfg.AutoInit {
		return nil
	}
	_, err := svc.Init(ctx, InitParamsFromConfig(cfg))
	if errors.Is(err, alias.ErrAlreadyInitialized) {
		logger.Info("Registry already initialized, skipping auto init")
		return nil
	}
	return err
}
