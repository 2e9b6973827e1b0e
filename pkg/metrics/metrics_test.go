package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperation(t *testing.T) {
	m := New(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))

	m.ObserveOperation("create", time.Now(), nil)
	m.ObserveOperation("create", time.Now(), alias.ErrAliasTaken)
	m.ObserveOperation("create", time.Now(), alias.ErrOwnerHasAlias)
	m.ObserveOperation("destroy", time.Now(), errors.New("db down"))

	assert.InDelta(t, 1, testutil.ToFloat64(m.operations.WithLabelValues("create", "success")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.operations.WithLabelValues("create", "conflict")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.operations.WithLabelValues("destroy", "internal")), 0)
}

func TestTokenInstruction(t *testing.T) {
	m := New(WithRegistry(prometheus.NewRegistry()))
	m.TokenInstruction("Token.TransferRequested")
	m.TokenInstruction("Token.TransferRequested")
	assert.InDelta(t, 2, testutil.ToFloat64(m.tokenInstructions.WithLabelValues("Token.TransferRequested")), 0)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveOperation("create", time.Now(), nil)
		m.TokenInstruction("x")
	})
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "success", Outcome(nil))
	assert.Equal(t, "not_found", Outcome(alias.ErrAliasNotFound))
	assert.Equal(t, "unauthorized", Outcome(alias.ErrNotOwner))
	assert.Equal(t, "internal", Outcome(errors.New("x")))
}
