// SPDX-License-Identifier: MIT

package server

import "github.com/prometheus/client_golang/prometheus"

// Trace outcome labels.
const (
	resultOK      = "ok"
	resultInvalid = "invalid"
	resultError   = "error"
)

// Metrics groups the collectors exported on /metrics.
type Metrics struct {
	traces       *prometheus.CounterVec
	traceEdges   prometheus.Histogram
	randomGraphs prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		traces: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "algoviz_traces_total",
				Help: "Kruskal trace requests by result",
			},
			[]string{"result"},
		),
		traceEdges: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "algoviz_trace_edges",
				Help:    "Deduplicated edges processed per trace",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		randomGraphs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "algoviz_random_graphs_total",
				Help: "Random graphs generated",
			},
		),
	}
	for _, c := range []prometheus.Collector{m.traces, m.traceEdges, m.randomGraphs} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}
