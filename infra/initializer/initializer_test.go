package initializer

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	infracache "github.com/amirasaad/aliasregistry/infra/cache"
	infra_eventbus "github.com/amirasaad/aliasregistry/infra/eventbus"
	infra_repository "github.com/amirasaad/aliasregistry/infra/repository"
	"github.com/amirasaad/aliasregistry/infra/repository/memory"
	"github.com/amirasaad/aliasregistry/pkg/config"
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/events"
	"github.com/amirasaad/aliasregistry/pkg/service/registry"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestInitEventBus_DefaultsToMemory(t *testing.T) {
	bus, err := initEventBus(&config.App{}, discard)
	require.NoError(t, err)
	require.IsType(t, &infra_eventbus.MemoryEventBus{}, bus)

	rec := &alias.Record{Alias: "alice", Owner: "secret1alice"}
	require.NoError(t, bus.Emit(context.Background(), events.NewAliasCreated(rec, false)))
	assert.Empty(t, bus.(*infra_eventbus.MemoryEventBus).Published(), "production bus keeps no history")
}

func TestInitEventBus_ExplicitRedisRequiresURL(t *testing.T) {
	cfg := &config.App{
		Redis:    &config.Redis{URL: ""},
		EventBus: &config.EventBus{Driver: "redis"},
	}
	_, err := initEventBus(cfg, discard)
	require.Error(t, err)
}

func TestInitEventBus_RedisConnectionErrorFallsBackToMemory(t *testing.T) {
	cfg := &config.App{
		Redis:    &config.Redis{URL: "redis://127.0.0.1:1"},
		EventBus: &config.EventBus{Driver: "redis", Stream: "test", Group: "test"},
	}
	bus, err := initEventBus(cfg, discard)
	require.NoError(t, err)
	require.IsType(t, &infra_eventbus.MemoryEventBus{}, bus)
}

func TestInitEventBus_ExplicitKafkaRequiresBrokers(t *testing.T) {
	cfg := &config.App{
		Kafka:    &config.Kafka{},
		EventBus: &config.EventBus{Driver: "kafka"},
	}
	_, err := initEventBus(cfg, discard)
	require.Error(t, err)
}

func TestInitEventBus_UnknownDriver(t *testing.T) {
	_, err := initEventBus(&config.App{EventBus: &config.EventBus{Driver: "carrier-pigeon"}}, discard)
	require.ErrorContains(t, err, "carrier-pigeon")
}

func TestInitCache(t *testing.T) {
	c, closer, err := initCache(&config.App{Cache: &config.Cache{Driver: "memory", TTL: time.Minute, Cleanup: time.Minute}}, discard)
	require.NoError(t, err)
	assert.Nil(t, closer)
	require.IsType(t, &infracache.MemoryCache{}, c)

	c, _, err = initCache(&config.App{Cache: &config.Cache{Driver: "none"}}, discard)
	require.NoError(t, err)
	assert.Nil(t, c)

	_, _, err = initCache(&config.App{Cache: &config.Cache{Driver: "redis"}}, discard)
	require.Error(t, err)

	c, closer, err = initCache(&config.App{
		Cache: &config.Cache{Driver: "redis", TTL: time.Minute, Prefix: "c:"},
		Redis: &config.Redis{URL: "redis://127.0.0.1:1/0"},
	}, discard)
	require.NoError(t, err)
	require.IsType(t, &infracache.RedisCache{}, c)
	require.NoError(t, closer.Close())

	_, _, err = initCache(&config.App{Cache: &config.Cache{Driver: "disk"}}, discard)
	require.Error(t, err)
}

func TestInitStorage(t *testing.T) {
	uow, err := initStorage(&config.App{DB: &config.DB{Driver: "memory"}}, discard)
	require.NoError(t, err)
	require.IsType(t, &memory.UoW{}, uow)

	uow, err = initStorage(&config.App{
		Env: "test",
		DB: &config.DB{
			Driver: "sqlite",
			Url:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		},
	}, discard)
	require.NoError(t, err)
	require.IsType(t, &infra_repository.UoW{}, uow)

	_, err = initStorage(&config.App{DB: &config.DB{Driver: "postgres"}}, discard)
	require.Error(t, err, "missing URL")
}

func TestInitialize_MemoryStack(t *testing.T) {
	cfg := &config.App{
		Env:      "test",
		DB:       &config.DB{Driver: "memory"},
		EventBus: &config.EventBus{Driver: "memory"},
		Cache:    &config.Cache{Driver: "memory", TTL: time.Minute, Cleanup: time.Minute},
		Registry: &config.Registry{MaxAliasSize: 12, AutoInit: true},
	}
	deps, closer, err := initialize(cfg, discard, prometheus.NewRegistry())
	require.NoError(t, err)
	defer closer()

	require.NotNil(t, deps.Uow)
	require.NotNil(t, deps.EventBus)
	require.NotNil(t, deps.Cache)
	require.NotNil(t, deps.Token)
	require.NotNil(t, deps.Metrics)

	svc := registry.NewService(*deps)
	ctx := context.Background()
	require.NoError(t, AutoInit(ctx, svc, cfg.Registry, discard))
	require.NoError(t, AutoInit(ctx, svc, cfg.Registry, discard), "second auto init is a no-op")

	read, err := svc.Config(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint16(12), read.MaxAliasSize)
}

func TestAutoInit_Disabled(t *testing.T) {
	svc := registry.NewService(config.Deps{Uow: memory.NewUoW(memory.New()), Logger: discard})
	require.NoError(t, AutoInit(context.Background(), svc, &config.Registry{}, discard))
	_, err := svc.Config(context.Background())
	require.ErrorIs(t, err, alias.ErrConfigNotFound)
}

func TestInitParamsFromConfig(t *testing.T) {
	params := InitParamsFromConfig(&config.Registry{
		MaxAliasSize:              64,
		TokenContractAddress:      "secret1token",
		TokenContractHash:         "h1",
		PaymentDestinationAddress: "secret1dest",
		PaymentDestinationHash:    "h2",
	})
	cfg, err := params.Config()
	require.NoError(t, err)
	assert.True(t, cfg.Gated())
	assert.Equal(t, uint16(64), cfg.MaxAliasSize)
	assert.Equal(t, "h2", cfg.PaymentDestination.CodeHash)

	half := InitParamsFromConfig(&config.Registry{TokenContractAddress: "secret1token"})
	_, err = half.Config()
	require.ErrorIs(t, err, alias.ErrInvalidPaymentConfig)

	open := InitParamsFromConfig(nil)
	assert.Nil(t, open.MaxAliasSize)
	assert.Nil(t, open.TokenContract)
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, &config.Log{Format: "json", Prefix: "[test]"})
	logger.Info("Create successful", "alias", "alice")
	assert.Contains(t, buf.String(), "alice")
	assert.Contains(t, buf.String(), "Create successful")
}
