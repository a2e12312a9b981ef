// Package metrics holds the Prometheus collectors of the meal planner.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mealplanner"

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Generations       *prometheus.CounterVec
	GenerationSeconds prometheus.Histogram
	OverrideFailures  *prometheus.CounterVec
	Items             prometheus.Gauge
	RPCRequests       *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "grocery_generations_total",
				Help:      "Grocery list generations by outcome",
			},
			[]string{"outcome"},
		),
		GenerationSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "grocery_generation_seconds",
				Help:      "Time taken to generate a grocery list",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		),
		OverrideFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "grocery_override_failures_total",
				Help:      "Override store failures that were recovered",
			},
			[]string{"op"},
		),
		Items: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "grocery_items",
				Help:      "Items in the most recently generated grocery list",
			},
		),
		RPCRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rpc_requests_total",
				Help:      "RPC requests by procedure and result code",
			},
			[]string{"procedure", "code"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.Generations, m.GenerationSeconds, m.OverrideFailures, m.Items, m.RPCRequests)
	}
	return m
}

// ObserveGeneration records one generation run.
func (m *Metrics) ObserveGeneration(outcome string, elapsed time.Duration, items int) {
	if m == nil {
		return
	}
	m.Generations.WithLabelValues(outcome).Inc()
	m.GenerationSeconds.Observe(elapsed.Seconds())
	if outcome == OutcomeOK {
		m.Items.Set(float64(items))
	}
}

// OverrideFailure counts a recovered override store failure.
func (m *Metrics) OverrideFailure(op string) {
	if m == nil {
		return
	}
	m.OverrideFailures.WithLabelValues(op).Inc()
}

// RPCRequest counts one handled RPC.
func (m *Metrics) RPCRequest(procedure, code string) {
	if m == nil {
		return
	}
	m.RPCRequests.WithLabelValues(procedure, code).Inc()
}

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"

	OpLoad = "load"
	OpSave = "save"
)
