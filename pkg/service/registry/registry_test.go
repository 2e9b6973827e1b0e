package registry_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	infracache "github.com/amirasaad/aliasregistry/infra/cache"
	infraeventbus "github.com/amirasaad/aliasregistry/infra/eventbus"
	"github.com/amirasaad/aliasregistry/infra/provider/mocktoken"
	"github.com/amirasaad/aliasregistry/infra/repository/memory"
	"github.com/amirasaad/aliasregistry/pkg/config"
	"github.com/amirasaad/aliasregistry/pkg/domain"
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/events"
	"github.com/amirasaad/aliasregistry/pkg/domain/payment"
	"github.com/amirasaad/aliasregistry/pkg/service/registry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

var (
	tokenRef       = alias.ContractRef{Address: "secret1token", CodeHash: "tokenhash"}
	destinationRef = alias.ContractRef{Address: "secret1treasury", CodeHash: "treasuryhash"}
)

type fixture struct {
	svc   *registry.Service
	store *memory.Store
	bus   *infraeventbus.MemoryEventBus
	token *mocktoken.MockTokenContract
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New()
	bus := infraeventbus.NewWithMemory(logger, infraeventbus.WithRecording())
	tok := mocktoken.NewMockTokenContract()
	svc := registry.NewService(config.Deps{
		Uow:      memory.NewUoW(store),
		Token:    tok,
		EventBus: bus,
		Cache:    infracache.NewMemoryCache(time.Minute, time.Minute, logger),
		Logger:   logger,
	})
	return &fixture{svc: svc, store: store, bus: bus, token: tok}
}

func intPtr(v int) *int { return &v }

func (f *fixture) initOpen(t *testing.T, maxSize int) {
	t.Helper()
	_, err := f.svc.Init(context.Background(), alias.InitParams{MaxAliasSize: intPtr(maxSize)})
	require.NoError(t, err)
}

func (f *fixture) initGated(t *testing.T) {
	t.Helper()
	_, err := f.svc.Init(context.Background(), alias.InitParams{
		TokenContract:      &tokenRef,
		PaymentDestination: &destinationRef,
	})
	require.NoError(t, err)
}

func create(f *fixture, owner alias.Identity, name string) error {
	_, err := f.svc.Create(context.Background(), registry.CreateCommand{Owner: owner, Alias: name})
	return err
}

func notification(t *testing.T, sender alias.Identity, amount int64, name string) payment.Notification {
	t.Helper()
	payload, err := payment.EncodePayload(payment.CreateRequest{Alias: name})
	require.NoError(t, err)
	return payment.Notification{
		Sender:  sender,
		From:    "secret1payer",
		Amount:  decimal.NewFromInt(amount),
		Payload: payload,
	}
}

func TestInit(t *testing.T) {
	t.Parallel()

	t.Run("defaults max size", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		read, err := f.svc.Init(context.Background(), alias.InitParams{})
		require.NoError(t, err)
		assert.Equal(t, uint16(alias.DefaultMaxAliasSize), read.MaxAliasSize)
		assert.False(t, read.Gated)
		assert.Empty(t, read.Price)
	})

	t.Run("second init conflicts", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initOpen(t, 10)
		_, err := f.svc.Init(context.Background(), alias.InitParams{MaxAliasSize: intPtr(20)})
		require.ErrorIs(t, err, alias.ErrAlreadyInitialized)

		read, err := f.svc.Config(context.Background())
		require.NoError(t, err)
		assert.Equal(t, uint16(10), read.MaxAliasSize)
	})

	t.Run("invalid max size", func(t *testing.T) {
		t.Parallel()
		for _, size := range []int{0, -1, 65536} {
			f := newFixture(t)
			_, err := f.svc.Init(context.Background(), alias.InitParams{MaxAliasSize: intPtr(size)})
			require.ErrorIs(t, err, alias.ErrInvalidMaxSize, "size %d", size)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, 0, f.store.Len())
		}
	})

	t.Run("gated registers receiver", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initGated(t)
		assert.Equal(t, []alias.ContractRef{tokenRef}, f.token.Receivers())

		published := f.bus.Published()
		require.Len(t, published, 1)
		assert.Equal(t, events.EventTypeRegistryInitialized.String(), published[0].Type())

		read, err := f.svc.Config(context.Background())
		require.NoError(t, err)
		assert.True(t, read.Gated)
		assert.Equal(t, "1000000", read.Price)
		assert.Equal(t, &tokenRef, read.TokenContract)
	})

	t.Run("half configured gate", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		_, err := f.svc.Init(context.Background(), alias.InitParams{TokenContract: &tokenRef})
		require.ErrorIs(t, err, alias.ErrInvalidPaymentConfig)
	})
}

func TestOperationsBeforeInit(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Config(ctx)
	require.ErrorIs(t, err, alias.ErrConfigNotFound)
	require.ErrorIs(t, create(f, "secret1alice", "alice"), alias.ErrConfigNotFound)
	_, err = f.svc.Destroy(ctx, "secret1alice", "alice")
	require.ErrorIs(t, err, alias.ErrConfigNotFound)
	_, err = f.svc.Search(ctx, "alias", "alice")
	require.ErrorIs(t, err, alias.ErrConfigNotFound)
	_, err = f.svc.Search(ctx, "address", "secret1alice")
	require.ErrorIs(t, err, alias.ErrConfigNotFound)
	_, err = f.svc.Show(ctx, "alice")
	require.ErrorIs(t, err, alias.ErrConfigNotFound)
}

func TestOwnershipRoundTrip(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.initOpen(t, 64)
	ctx := context.Background()
	avatar := "https://example.com/nb.png"

	answer, err := f.svc.Create(ctx, registry.CreateCommand{
		Owner:     "secret1owner",
		Alias:     "nailbiter",
		AvatarURL: &avatar,
	})
	require.NoError(t, err)
	assert.Equal(t, "success", answer.Status)
	require.NotNil(t, answer.Alias)
	assert.Equal(t, "nailbiter", answer.Alias.Alias)

	res, err := f.svc.Search(ctx, "alias", "nailbiter")
	require.NoError(t, err)
	assert.Equal(t, "alias", res.Type)
	assert.Equal(t, "secret1owner", res.Attributes.Address)
	assert.Equal(t, &avatar, res.Attributes.AvatarURL)

	byOwner, err := f.svc.Search(ctx, "address", "secret1owner")
	require.NoError(t, err)
	assert.Equal(t, "address", byOwner.Type)
	assert.Equal(t, "nailbiter", byOwner.Attributes.Alias)

	_, err = f.svc.Destroy(ctx, "secret1owner", "nailbiter")
	require.NoError(t, err)

	_, err = f.svc.Search(ctx, "alias", "nailbiter")
	require.ErrorIs(t, err, alias.ErrAliasNotFound)
	_, err = f.svc.Search(ctx, "address", "secret1owner")
	require.ErrorIs(t, err, alias.ErrAliasNotFound)

	// the config row is all that is left
	assert.Equal(t, []string{"config"}, f.store.Keys())

	var types []string
	for _, e := range f.bus.Published() {
		types = append(types, e.Type())
	}
	assert.Equal(t, []string{
		events.EventTypeRegistryInitialized.String(),
		events.EventTypeAliasCreated.String(),
		events.EventTypeAliasDestroyed.String(),
	}, types)
}

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("case variants are taken", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initOpen(t, 64)
		require.NoError(t, create(f, "secret1alice", "Alice"))
		for _, variant := range []string{"alice", "ALICE", "  aLiCe "} {
			err := create(f, "secret1bob", variant)
			require.ErrorIs(t, err, alias.ErrAliasTaken, variant)
			require.ErrorIs(t, err, domain.ErrConflict)
		}
	})

	t.Run("one alias per owner", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initOpen(t, 64)
		require.NoError(t, create(f, "secret1alice", "alice"))
		require.ErrorIs(t, create(f, "secret1alice", "alice2"), alias.ErrOwnerHasAlias)

		_, err := f.svc.Search(context.Background(), "alias", "alice2")
		require.ErrorIs(t, err, alias.ErrAliasNotFound)
	})

	t.Run("size boundary", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initOpen(t, 10)
		require.NoError(t, create(f, "secret1a", strings.Repeat("a", 10)))
		err := create(f, "secret1b", strings.Repeat("b", 11))
		require.ErrorIs(t, err, alias.ErrTooLong)
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("length counts normalized bytes", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initOpen(t, 3)
		require.NoError(t, create(f, "secret1a", "   abc   "))
	})

	t.Run("blank alias", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initOpen(t, 10)
		require.ErrorIs(t, create(f, "secret1a", "   "), alias.ErrEmptyAlias)
	})

	t.Run("missing owner", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initOpen(t, 10)
		require.ErrorIs(t, create(f, "", "alice"), alias.ErrMissingOwner)
	})

	t.Run("gated registry requires payment", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initGated(t)
		err := create(f, "secret1alice", "alice")
		require.ErrorIs(t, err, payment.ErrPaymentRequired)
		require.ErrorIs(t, err, domain.ErrPayment)
		assert.Equal(t, []string{"config"}, f.store.Keys())
	})
}

func TestDestroy(t *testing.T) {
	t.Parallel()

	t.Run("not owner", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initOpen(t, 10)
		require.NoError(t, create(f, "secret1o1", "x"))

		_, err := f.svc.Destroy(context.Background(), "secret1o2", "x")
		require.ErrorIs(t, err, alias.ErrNotOwner)
		require.ErrorIs(t, err, domain.ErrUnauthorized)

		res, err := f.svc.Search(context.Background(), "alias", "x")
		require.NoError(t, err)
		assert.Equal(t, "secret1o1", res.Attributes.Address)
	})

	t.Run("empty caller", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initOpen(t, 10)
		require.NoError(t, create(f, "secret1o1", "x"))
		_, err := f.svc.Destroy(context.Background(), "", "x")
		require.ErrorIs(t, err, alias.ErrNotOwner)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initOpen(t, 10)
		_, err := f.svc.Destroy(context.Background(), "secret1o1", "ghost")
		require.ErrorIs(t, err, alias.ErrAliasNotFound)
	})

	t.Run("normalizes input", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initOpen(t, 10)
		require.NoError(t, create(f, "secret1o1", "x"))
		_, err := f.svc.Destroy(context.Background(), "secret1o1", " X ")
		require.NoError(t, err)
		require.NoError(t, create(f, "secret1o1", "y"), "owner may register again")
	})
}

func TestSearch(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.initOpen(t, 64)
	ctx := context.Background()
	require.NoError(t, create(f, "secret1nb", "Nail Biter"))

	a, err := f.svc.Search(ctx, "alias", " Nail Biter ")
	require.NoError(t, err)
	b, err := f.svc.Search(ctx, "alias", "nail biter")
	require.NoError(t, err)
	assert.Equal(t, a.Attributes, b.Attributes)

	show, err := f.svc.Show(ctx, "NAIL BITER")
	require.NoError(t, err)
	assert.Equal(t, a, show)

	_, err = f.svc.Search(ctx, "nickname", "nail biter")
	require.ErrorIs(t, err, alias.ErrBadSearchType)

	_, err = f.svc.Search(ctx, "address", "secret1nobody")
	require.ErrorIs(t, err, alias.ErrAliasNotFound)
	_, err = f.svc.Search(ctx, "address", "  ")
	require.ErrorIs(t, err, alias.ErrAliasNotFound)
}

func TestReceive(t *testing.T) {
	t.Parallel()

	t.Run("verified payment creates alias and forwards funds", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initGated(t)

		answer, err := f.svc.Receive(context.Background(), notification(t, tokenRef.Address, 1_000_000, " Paid "))
		require.NoError(t, err)
		require.NotNil(t, answer.Alias)
		assert.Equal(t, "paid", answer.Alias.Alias)
		assert.Equal(t, "secret1payer", answer.Alias.Address)

		want := payment.Transfer{
			Contract:  tokenRef,
			Recipient: destinationRef,
			Amount:    decimal.NewFromInt(1_000_000),
			Memo:      "alias:paid",
		}
		require.Len(t, answer.Messages, 1)
		assert.True(t, want.Amount.Equal(answer.Messages[0].Amount))
		assert.Equal(t, want.Recipient, answer.Messages[0].Recipient)
		require.Len(t, f.token.Transfers(), 1)
		assert.Equal(t, want.Memo, f.token.Transfers()[0].Memo)

		res, err := f.svc.Search(context.Background(), "address", "secret1payer")
		require.NoError(t, err)
		assert.Equal(t, "paid", res.Attributes.Alias)
	})

	t.Run("wrong token", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initGated(t)
		_, err := f.svc.Receive(context.Background(), notification(t, "secret1impostor", 1_000_000, "paid"))
		require.ErrorIs(t, err, payment.ErrWrongToken)
		assert.Empty(t, f.token.Transfers())
		assert.Equal(t, []string{"config"}, f.store.Keys())
	})

	t.Run("wrong amount", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initGated(t)
		for _, amount := range []int64{999_999, 1_000_001, 0} {
			_, err := f.svc.Receive(context.Background(), notification(t, tokenRef.Address, amount, "paid"))
			require.ErrorIs(t, err, payment.ErrWrongAmount, "amount %d", amount)
		}
		assert.Empty(t, f.token.Transfers())
	})

	t.Run("taken alias is not charged", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initGated(t)
		_, err := f.svc.Receive(context.Background(), notification(t, tokenRef.Address, 1_000_000, "paid"))
		require.NoError(t, err)

		n := notification(t, tokenRef.Address, 1_000_000, "PAID")
		n.From = "secret1other"
		_, err = f.svc.Receive(context.Background(), n)
		require.ErrorIs(t, err, alias.ErrAliasTaken)
		assert.Len(t, f.token.Transfers(), 1)
	})

	t.Run("invalid payload", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initGated(t)
		n := notification(t, tokenRef.Address, 1_000_000, "paid")
		n.Payload = "not base64!"
		_, err := f.svc.Receive(context.Background(), n)
		require.ErrorIs(t, err, payment.ErrInvalidPayload)
	})

	t.Run("gate disabled", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initOpen(t, 10)
		_, err := f.svc.Receive(context.Background(), notification(t, tokenRef.Address, 1_000_000, "paid"))
		require.ErrorIs(t, err, payment.ErrGateDisabled)
	})

	t.Run("token failure does not undo the alias", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.initGated(t)
		f.token.Err = assert.AnError
		_, err := f.svc.Receive(context.Background(), notification(t, tokenRef.Address, 1_000_000, "paid"))
		require.NoError(t, err)
		_, err = f.svc.Show(context.Background(), "paid")
		require.NoError(t, err)
	})
}

func TestSearch_CacheInvalidatedOnDestroy(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.initOpen(t, 10)
	ctx := context.Background()
	require.NoError(t, create(f, "secret1a", "cached"))

	// populate both cache keys
	_, err := f.svc.Search(ctx, "alias", "cached")
	require.NoError(t, err)
	_, err = f.svc.Search(ctx, "address", "secret1a")
	require.NoError(t, err)

	_, err = f.svc.Destroy(ctx, "secret1a", "cached")
	require.NoError(t, err)

	_, err = f.svc.Search(ctx, "alias", "cached")
	require.ErrorIs(t, err, alias.ErrAliasNotFound)
	_, err = f.svc.Search(ctx, "address", "secret1a")
	require.ErrorIs(t, err, alias.ErrAliasNotFound)
}
