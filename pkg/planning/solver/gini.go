package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"

	"github.com/plan-framework/satplan/pkg/metrics"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

type giniBackend struct{}

// Gini returns the backend backed by the gini CDCL solver.
func Gini() Backend {
	return giniBackend{}
}

func (giniBackend) Name() string {
	return "gini"
}

func (giniBackend) New(vars int) Instance {
	return &giniInstance{g: gini.NewV(vars), vars: vars}
}

type giniInstance struct {
	g    *gini.Gini
	vars int
}

func (i *giniInstance) Load(clauses [][]int) error {
	if err := checkUnits(clauses); err != nil {
		return err
	}
	for _, clause := range clauses {
		for _, lit := range clause {
			i.g.Add(z.Dimacs2Lit(lit))
		}
		i.g.Add(z.LitNull)
	}
	return nil
}

func (i *giniInstance) Solve(ctx context.Context) (Model, error) {
	started := time.Now()
	switch waitForSolution(ctx, i.g.GoSolve()) {
	case satisfiable:
		metrics.EmitGiniSolve(metrics.Sat)
		return i.model(), nil
	case unsatisfiable:
		metrics.EmitGiniSolve(metrics.Unsat)
		return nil, ErrUnsatisfiable
	default:
		metrics.EmitGiniSolve(metrics.Aborted)
		return nil, ctxFault(ctx, started)
	}
}

// model reads the satisfying assignment for every allocated variable.
// Variables the formula never mentions sit beyond gini's high-water
// mark and default to false.
func (i *giniInstance) model() Model {
	mentioned := int(i.g.MaxVar())
	m := make(Model, i.vars)
	for v := 1; v <= i.vars; v++ {
		if v <= mentioned && i.g.Value(z.Dimacs2Lit(v)) {
			m[v-1] = v
		} else {
			m[v-1] = -v
		}
	}
	return m
}

// waitForSolution polls a backgrounded solve, stopping it when ctx is
// done. Stop still reports the verdict when the solve happened to
// finish concurrently with cancellation.
func waitForSolution(ctx context.Context, gs inter.Solve) int {
	t := time.NewTicker(50 * time.Millisecond)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return gs.Stop()
		case <-t.C:
			if result, ok := gs.Test(); ok {
				return result
			}
		}
	}
}
