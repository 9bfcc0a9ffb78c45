package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends() []Backend {
	return []Backend{Gini(), Gophersat()}
}

// pigeonhole returns the formula placing holes+1 pigeons into holes
// holes. It is unsatisfiable and far too hard for any CDCL solver to
// refute quickly, which makes it a reliable way to keep a backend busy.
func pigeonhole(holes int) (vars int, clauses [][]int) {
	pigeons := holes + 1
	vars = pigeons * holes
	v := func(pigeon, hole int) int {
		return (pigeon-1)*holes + hole
	}

	for pigeon := 1; pigeon <= pigeons; pigeon++ {
		clause := make([]int, 0, holes)
		for hole := 1; hole <= holes; hole++ {
			clause = append(clause, v(pigeon, hole))
		}
		clauses = append(clauses, clause)
	}
	for hole := 1; hole <= holes; hole++ {
		for p1 := 1; p1 <= pigeons; p1++ {
			for p2 := p1 + 1; p2 <= pigeons; p2++ {
				clauses = append(clauses, []int{-v(p1, hole), -v(p2, hole)})
			}
		}
	}
	return vars, clauses
}

func TestSolveSatisfiable(t *testing.T) {
	for _, backend := range backends() {
		t.Run(backend.Name(), func(t *testing.T) {
			instance := backend.New(2)
			require.NoError(t, instance.Load([][]int{{1, 2}, {-1}}))

			model, err := instance.Solve(context.Background())
			require.NoError(t, err)
			assert.Equal(t, Model{-1, 2}, model)
		})
	}
}

func TestSolveUnsatisfiable(t *testing.T) {
	for _, backend := range backends() {
		t.Run(backend.Name(), func(t *testing.T) {
			instance := backend.New(2)
			require.NoError(t, instance.Load([][]int{{1, 2}, {-1}, {-2}}))

			model, err := instance.Solve(context.Background())
			assert.Nil(t, model)
			assert.Equal(t, ErrUnsatisfiable, err)
		})
	}
}

func TestLoadReportsUnitContradictions(t *testing.T) {
	for _, backend := range backends() {
		t.Run(backend.Name(), func(t *testing.T) {
			instance := backend.New(3)
			err := instance.Load([][]int{{3}, {1, 2}, {-3}})
			assert.Equal(t, ContradictionError{Var: 3}, err)
		})
	}
}

func TestCheckUnits(t *testing.T) {
	type tc struct {
		Name     string
		Clauses  [][]int
		Expected error
	}

	for _, tt := range []tc{
		{
			Name:    "no units",
			Clauses: [][]int{{1, 2}, {-1, -2}},
		},
		{
			Name:    "agreeing units",
			Clauses: [][]int{{1}, {1}, {-2}},
		},
		{
			Name:     "conflicting units",
			Clauses:  [][]int{{1}, {-1}},
			Expected: ContradictionError{Var: 1},
		},
		{
			Name:     "conflict on a later variable",
			Clauses:  [][]int{{1, 2}, {-4}, {3}, {4}},
			Expected: ContradictionError{Var: 4},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			err := checkUnits(tt.Clauses)
			if tt.Expected == nil {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.Expected, err)
			}
		})
	}
}

func TestSolveTimesOut(t *testing.T) {
	vars, clauses := pigeonhole(10)

	for _, backend := range backends() {
		t.Run(backend.Name(), func(t *testing.T) {
			instance := backend.New(vars)
			require.NoError(t, instance.Load(clauses))

			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			model, err := instance.Solve(ctx)
			assert.Nil(t, model)

			var timeout TimeoutError
			require.True(t, errors.As(err, &timeout), "expected a timeout, got %v", err)
			assert.Greater(t, timeout.Elapsed, time.Duration(0))
		})
	}
}

func TestSolveStopsOnCancellation(t *testing.T) {
	vars, clauses := pigeonhole(10)

	for _, backend := range backends() {
		t.Run(backend.Name(), func(t *testing.T) {
			instance := backend.New(vars)
			require.NoError(t, instance.Load(clauses))

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			model, err := instance.Solve(ctx)
			assert.Nil(t, model)
			assert.Equal(t, context.Canceled, err)
		})
	}
}

func TestModelCoversEveryAllocatedVariable(t *testing.T) {
	for _, backend := range backends() {
		t.Run(backend.Name(), func(t *testing.T) {
			instance := backend.New(4)
			require.NoError(t, instance.Load([][]int{{2}}))

			model, err := instance.Solve(context.Background())
			require.NoError(t, err)
			require.Len(t, model, 4)

			// Variables beyond the formula's last mention default to false.
			assert.Equal(t, 2, model[1])
			assert.Equal(t, -3, model[2])
			assert.Equal(t, -4, model[3])
		})
	}
}
