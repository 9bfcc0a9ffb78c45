package solver

import (
	"context"
	"fmt"
	"time"

	gophersat "github.com/crillab/gophersat/solver"

	"github.com/plan-framework/satplan/pkg/metrics"
)

type gophersatBackend struct{}

// Gophersat returns the backend backed by the gophersat CDCL solver.
func Gophersat() Backend {
	return gophersatBackend{}
}

func (gophersatBackend) Name() string {
	return "gophersat"
}

func (gophersatBackend) New(vars int) Instance {
	return &gophersatInstance{vars: vars}
}

type gophersatInstance struct {
	vars    int
	problem *gophersat.Problem
}

func (i *gophersatInstance) Load(clauses [][]int) error {
	if err := checkUnits(clauses); err != nil {
		return err
	}
	i.problem = gophersat.ParseSlice(clauses)
	return nil
}

func (i *gophersatInstance) Solve(ctx context.Context) (Model, error) {
	if i.problem == nil {
		i.problem = gophersat.ParseSlice(nil)
	}
	started := time.Now()

	s := gophersat.New(i.problem)
	verdict := make(chan gophersat.Status, 1)
	go func() {
		verdict <- s.Solve()
	}()

	// Solve exposes no cancellation hook, so an abandoned solve runs
	// on in the background until it finishes on its own.
	select {
	case <-ctx.Done():
		metrics.EmitGophersatSolve(metrics.Aborted)
		return nil, ctxFault(ctx, started)
	case status := <-verdict:
		switch status {
		case gophersat.Sat:
			metrics.EmitGophersatSolve(metrics.Sat)
			return i.model(s), nil
		case gophersat.Unsat:
			metrics.EmitGophersatSolve(metrics.Unsat)
			return nil, ErrUnsatisfiable
		default:
			metrics.EmitGophersatSolve(metrics.Aborted)
			return nil, fmt.Errorf("solver stopped with status %v", status)
		}
	}
}

// model reads the satisfying assignment for every allocated variable.
// The backend's model only covers variables the formula mentions; the
// rest default to false.
func (i *gophersatInstance) model(s *gophersat.Solver) Model {
	values := s.Model()
	m := make(Model, i.vars)
	for v := 1; v <= i.vars; v++ {
		if v-1 < len(values) && values[v-1] {
			m[v-1] = v
		} else {
			m[v-1] = -v
		}
	}
	return m
}
