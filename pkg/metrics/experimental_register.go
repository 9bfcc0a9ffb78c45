//go:build experimental_metrics
// +build experimental_metrics

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	// Register experimental metrics
	solveMetrics = solveCounters(giniBackend, gophersatBackend)
	registerSolveMetrics()
}

func solveCounters(backendNames ...string) map[string]*prometheus.CounterVec {
	result := map[string]*prometheus.CounterVec{}
	for _, s := range backendNames {
		result[s] = createSolveCounterVec(s)
	}
	return result
}

func createSolveCounterVec(name string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "satplan_solve_" + name,
			Help: fmt.Sprintf("Count of solve verdicts returned by the %s backend", name),
		},
		[]string{Verdict},
	)
}

func registerSolveMetrics() {
	for _, v := range solveMetrics {
		prometheus.MustRegister(v)
	}
}
