package token

import (
	"context"
	"io"
	"log/slog"
	"testing"

	infraeventbus "github.com/amirasaad/aliasregistry/infra/eventbus"
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/events"
	"github.com/amirasaad/aliasregistry/pkg/domain/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRelay() (*Relay, *infraeventbus.MemoryEventBus) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := infraeventbus.NewWithMemory(logger, infraeventbus.WithRecording())
	return NewRelay(bus, logger), bus
}

func TestRelay_Transfer(t *testing.T) {
	relay, bus := newRelay()
	tr := payment.Transfer{
		Contract:  alias.ContractRef{Address: "secret1token", CodeHash: "h"},
		Recipient: alias.ContractRef{Address: "secret1treasury"},
		Amount:    payment.FixedPrice,
		Memo:      "alias:alice",
	}

	require.NoError(t, relay.Transfer(context.Background(), tr))

	published := bus.Published()
	require.Len(t, published, 1)
	ev, ok := published[0].(*events.TokenTransferRequested)
	require.True(t, ok)
	assert.Equal(t, "secret1treasury", ev.RecipientAddress)
	assert.Equal(t, "1000000", ev.Amount)
}

func TestRelay_TransferRejectsBadInstruction(t *testing.T) {
	relay, bus := newRelay()

	err := relay.Transfer(context.Background(), payment.Transfer{Amount: payment.FixedPrice})
	assert.ErrorContains(t, err, "recipient")

	err = relay.Transfer(context.Background(), payment.Transfer{
		Recipient: alias.ContractRef{Address: "secret1treasury"},
		Amount:    decimal.Zero,
	})
	assert.ErrorContains(t, err, "positive")
	assert.Empty(t, bus.Published())
}

func TestRelay_RegisterReceiver(t *testing.T) {
	relay, bus := newRelay()

	require.NoError(t, relay.RegisterReceiver(context.Background(), alias.ContractRef{Address: "secret1token"}))
	require.Len(t, bus.Published(), 1)
	assert.IsType(t, &events.ReceiverRegistrationRequested{}, bus.Published()[0])

	assert.Error(t, relay.RegisterReceiver(context.Background(), alias.ContractRef{}))
}
