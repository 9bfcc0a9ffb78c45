// Package metrics exposes the planner's Prometheus instrumentation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	Outcome   = "outcome"
	Succeeded = "succeeded"
	Failed    = "failed"
	Verdict   = "verdict"
	Sat       = "sat"
	Unsat     = "unsat"
	Aborted   = "aborted"
)

// To add new metrics:
// 1. Register new metrics in RegisterSatplan() below.
// 2. Add emit calls where the event is observed.
var (
	searchDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "satplan_search_duration_seconds",
			Help:       "The duration of a plan search attempt",
			Objectives: map[float64]float64{0.95: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{Outcome},
	)

	horizonsProbed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "satplan_horizons_probed_total",
			Help: "Monotonic count of horizon encodings handed to a SAT backend",
		},
	)
)

// RegisterSatplan registers every planner metric with the default
// Prometheus registry.
func RegisterSatplan() {
	prometheus.MustRegister(searchDuration)
	prometheus.MustRegister(horizonsProbed)
}

// RegisterSearchSuccess records the duration of a search that produced
// a plan.
func RegisterSearchSuccess(duration time.Duration) {
	searchDuration.WithLabelValues(Succeeded).Observe(duration.Seconds())
}

// RegisterSearchFailure records the duration of a search that ended
// without a plan.
func RegisterSearchFailure(duration time.Duration) {
	searchDuration.WithLabelValues(Failed).Observe(duration.Seconds())
}

// AddHorizonsProbed counts the horizon encodings a search attempted.
func AddHorizonsProbed(n int) {
	horizonsProbed.Add(float64(n))
}
