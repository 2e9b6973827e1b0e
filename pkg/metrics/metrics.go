// Package metrics exposes Prometheus instrumentation for registry operations.
package metrics

import (
	"time"

	"github.com/amirasaad/aliasregistry/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the collectors.
type Config struct {
	Namespace string
	Registry  prometheus.Registerer
	Buckets   []float64
}

// Option configures Metrics.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Metrics holds the registry collectors. A nil *Metrics records nothing.
type Metrics struct {
	operations        *prometheus.CounterVec
	duration          *prometheus.HistogramVec
	tokenInstructions *prometheus.CounterVec
}

// New registers the collectors.
func New(opts ...Option) *Metrics {
	cfg := Config{
		Namespace: "aliasregistry",
		Registry:  prometheus.DefaultRegisterer,
		Buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &Metrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "operations_total",
			Help:      "Registry operations by outcome",
		}, []string{"operation", "outcome"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Registry operation duration in seconds",
			Buckets:   cfg.Buckets,
		}, []string{"operation"}),

		tokenInstructions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "token_instructions_total",
			Help:      "Outgoing token contract instructions",
		}, []string{"type"}),
	}
}

// Outcome is the label recorded for err: "success", the domain error kind,
// or "internal".
func Outcome(err error) string {
	if err == nil {
		return "success"
	}
	if kind, ok := domain.KindOf(err); ok {
		return string(kind)
	}
	return "internal"
}

// ObserveOperation records one call of op that started at start.
func (m *Metrics) ObserveOperation(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op, Outcome(err)).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// TokenInstruction counts an outgoing instruction of the given event type.
func (m *Metrics) TokenInstruction(eventType string) {
	if m == nil {
		return
	}
	m.tokenInstructions.WithLabelValues(eventType).Inc()
}
