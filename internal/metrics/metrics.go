// Package metrics defines the Prometheus instrumentation for the decision
// service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the collectors the HTTP adapter increments. The engine core
// stays uninstrumented; decisions are counted at the serving boundary.
type Metrics struct {
	StateLookups  *prometheus.CounterVec
	Decisions     *prometheus.CounterVec
	CacheRequests *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StateLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txprocess_state_lookups_total",
				Help: "State lookups by process and outcome (resolved, undetermined, unknown_process).",
			},
			[]string{"process", "outcome"},
		),
		Decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txprocess_decisions_total",
				Help: "State-data descriptors computed, by process and role.",
			},
			[]string{"process", "role"},
		),
		CacheRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txprocess_decision_cache_requests_total",
				Help: "Decision cache lookups by result (hit, miss, error).",
			},
			[]string{"result"},
		),
	}
	reg.MustRegister(m.StateLookups, m.Decisions, m.CacheRequests)
	return m
}
