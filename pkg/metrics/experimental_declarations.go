package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	// Backend names
	giniBackend      = "gini"
	gophersatBackend = "gophersat"
)

var (
	solveMetrics = map[string]*prometheus.CounterVec{}
)

func EmitGiniSolve(verdict string) {
	emitSolve(giniBackend, verdict)
}

func EmitGophersatSolve(verdict string) {
	emitSolve(gophersatBackend, verdict)
}

func emitSolve(backendName, verdict string) {
	if counter, ok := solveMetrics[backendName]; ok {
		counter.WithLabelValues(verdict).Inc()
	}
}
