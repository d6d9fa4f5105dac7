// Package metrics holds the Prometheus collectors of the simulator.
package metrics

import (
	"errors"

	automaton "github.com/geange/automaton-tree"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records simulation outcomes.
type Metrics struct {
	simulations *prometheus.CounterVec
	rejected    *prometheus.CounterVec
	treeNodes   prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automaton_tree_simulations_total",
				Help: "Total number of completed simulations by verdict",
			},
			[]string{"verdict"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automaton_tree_rejected_inputs_total",
				Help: "Total number of inputs refused before a tree was built",
			},
			[]string{"reason"},
		),
		treeNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "automaton_tree_nodes",
				Help:    "Number of configurations in built computation trees",
				Buckets: prometheus.ExponentialBuckets(1, 4, 9),
			},
		),
	}
	reg.MustRegister(m.simulations, m.rejected, m.treeNodes)
	return m
}

// Observe records the result of one Simulate call.
func (m *Metrics) Observe(res *automaton.Result, err error) {
	if err != nil {
		m.rejected.WithLabelValues(Reason(err)).Inc()
		return
	}
	verdict := "rejected"
	if res.Accepted {
		verdict = "accepted"
	}
	m.simulations.WithLabelValues(verdict).Inc()
	m.treeNodes.Observe(float64(res.Nodes))
}

// Reason maps a Simulate error to a short label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, automaton.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, automaton.ErrInputTooLong):
		return "input_too_long"
	case errors.Is(err, automaton.ErrTreeTooLarge):
		return "tree_too_large"
	default:
		return "other"
	}
}
