package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service instruments on a private registry so tests can
// build isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	ActiveSessions       prometheus.Gauge
	SessionEvents        *prometheus.CounterVec
	Turns                *prometheus.CounterVec
	PhaseTransitions     *prometheus.CounterVec
	Disengagements       prometheus.Counter
	CollaboratorFallback *prometheus.CounterVec
	CrisisInterventions  prometheus.Counter
	TurnLatency          prometheus.Histogram
}

func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sessions currently held in the store.",
		}),
		SessionEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_events_total",
			Help:      "Session lifecycle events.",
		}, []string{"event"}),
		Turns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Conversation turns processed, by resulting phase.",
		}, []string{"phase"}),
		PhaseTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "phase_transitions_total",
			Help:      "Phase transitions taken.",
		}, []string{"from", "to"}),
		Disengagements: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "disengagements_total",
			Help:      "Turns classified as disengaged.",
		}),
		CollaboratorFallback: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collaborator_fallbacks_total",
			Help:      "Calls where an external collaborator failed and the deterministic path served.",
		}, []string{"op"}),
		CrisisInterventions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crisis_interventions_total",
			Help:      "Turns answered with the crisis resource response.",
		}),
		TurnLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "turn_latency_ms",
			Help:      "End to end turn handling latency in milliseconds.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}),
	}
}

// Handler serves the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
