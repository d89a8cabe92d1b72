// Package metrics exposes Prometheus collectors for search runs.
//
// A Recorder is registered on a caller-supplied registry so tests and
// embedding programs never touch the global default registry. All methods
// are safe on a nil *Recorder, which records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the search collectors.
type Recorder struct {
	runs       *prometheus.CounterVec
	expansions prometheus.Counter
	deadEnds   prometheus.Counter
	pathSteps  prometheus.Histogram
	iterations prometheus.Histogram
	frontier   prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		// runs counts finished searches by outcome
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridstar_search_runs_total",
			Help: "Total finished searches by outcome",
		}, []string{"outcome"}), // "goal_reached", "exhausted", "cancelled"

		expansions: f.NewCounter(prometheus.CounterOpts{
			Name: "gridstar_search_expansions_total",
			Help: "Total frontier nodes expanded",
		}),

		deadEnds: f.NewCounter(prometheus.CounterOpts{
			Name: "gridstar_search_dead_ends_total",
			Help: "Total expanded cells that yielded no new or cheaper neighbour",
		}),

		pathSteps: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridstar_search_path_steps",
			Help:    "Moves on the reconstructed path of successful searches",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10), // 1 to 512
		}),

		iterations: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridstar_search_iterations",
			Help:    "Frontier extraction attempts per finished search, including the empty one ending an exhausted search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), // 1 to ~16k
		}),

		frontier: f.NewGauge(prometheus.GaugeOpts{
			Name: "gridstar_search_frontier_size",
			Help: "Open-set size after the latest expansion",
		}),
	}
}

// ObserveExpansion records one expansion and the frontier size afterwards.
func (r *Recorder) ObserveExpansion(deadEnd bool, frontierLen int) {
	if r == nil {
		return
	}
	r.expansions.Inc()
	if deadEnd {
		r.deadEnds.Inc()
	}
	r.frontier.Set(float64(frontierLen))
}

// ObserveOutcome records a finished search. steps is only observed when a
// path was found.
func (r *Recorder) ObserveOutcome(outcome string, iterations, steps int, found bool) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(outcome).Inc()
	r.iterations.Observe(float64(iterations))
	if found {
		r.pathSteps.Observe(float64(steps))
	}
}
