package planner

import (
	"context"
	"time"

	"github.com/plan-framework/satplan/pkg/planning"
)

// InstrumentedPlanner wraps a Planner and reports the wall-clock
// duration of every search to the matching metrics emitter.
type InstrumentedPlanner struct {
	planner               Planner
	successMetricsEmitter func(time.Duration)
	failureMetricsEmitter func(time.Duration)
}

var _ Planner = &InstrumentedPlanner{}

// NewInstrumentedPlanner returns a Planner delegating to planner and
// feeding search durations to the given emitters.
func NewInstrumentedPlanner(planner Planner, successMetricsEmitter, failureMetricsEmitter func(time.Duration)) *InstrumentedPlanner {
	return &InstrumentedPlanner{
		planner:               planner,
		successMetricsEmitter: successMetricsEmitter,
		failureMetricsEmitter: failureMetricsEmitter,
	}
}

func (ip *InstrumentedPlanner) Plan(ctx context.Context, problem *planning.Problem) (*Solution, error) {
	start := time.Now()
	solution, err := ip.planner.Plan(ctx, problem)
	if err != nil {
		ip.failureMetricsEmitter(time.Since(start))
	} else {
		ip.successMetricsEmitter(time.Since(start))
	}
	return solution, err
}
