package events_test

import (
	"testing"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/events"
	"github.com/amirasaad/aliasregistry/pkg/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAliasCreated(t *testing.T) {
	avatar := "https://example.com/a.png"
	rec := &alias.Record{Alias: "alice", Owner: "secret1alice", AvatarURL: &avatar}

	e := events.NewAliasCreated(rec, true)

	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, "alice", e.Alias)
	assert.Equal(t, "secret1alice", e.Owner)
	assert.Equal(t, &avatar, e.AvatarURL)
	assert.True(t, e.Paid)
	assert.False(t, e.Timestamp.IsZero())
	assert.Equal(t, "Alias.Created", e.Type())
}

func TestNewTokenTransferRequested(t *testing.T) {
	tr := payment.Transfer{
		Contract:  alias.ContractRef{Address: "secret1token", CodeHash: "tokenhash"},
		Recipient: alias.ContractRef{Address: "secret1treasury"},
		Amount:    decimal.NewFromInt(1_000_000),
		Memo:      "alias:alice",
	}

	e := events.NewTokenTransferRequested(tr)

	assert.Equal(t, "secret1token", e.TokenAddress)
	assert.Equal(t, "tokenhash", e.TokenCodeHash)
	assert.Equal(t, "secret1treasury", e.RecipientAddress)
	assert.Equal(t, "1000000", e.Amount)
	assert.Equal(t, "alias:alice", e.Memo)
}

func TestNewRegistryInitialized(t *testing.T) {
	cfg, err := alias.NewConfig().
		WithMaxAliasSize(10).
		WithTokenContract(alias.ContractRef{Address: "secret1token"}).
		WithPaymentDestination(alias.ContractRef{Address: "secret1treasury"}).
		Build()
	require.NoError(t, err)

	e := events.NewRegistryInitialized(cfg)
	assert.Equal(t, uint16(10), e.MaxAliasSize)
	assert.Equal(t, "secret1token", e.TokenContract)

	ungated := events.NewRegistryInitialized(&alias.Config{MaxAliasSize: 5})
	assert.Empty(t, ungated.TokenContract)
}

func TestEventTypes_ConstructorsMatchType(t *testing.T) {
	for eventType, factory := range events.EventTypes {
		assert.Equal(t, eventType.String(), factory().Type(), eventType)
	}
}
