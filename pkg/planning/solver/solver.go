// Package solver abstracts the SAT backends the planner can drive.
// Backends take a DIMACS-coded clause set over a fixed variable count
// and report a satisfying model or unsatisfiability, under the
// caller's context.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Model assigns a truth value to every allocated variable: entry i
// holds i+1 when variable i+1 is true and -(i+1) when it is false.
// Entries are always in ascending variable order.
type Model []int

// ErrUnsatisfiable reports that the loaded formula has no model. For
// a horizon search this is the routine signal to try a longer horizon,
// not a fault.
var ErrUnsatisfiable = errors.New("formula is unsatisfiable")

// ContradictionError reports a conflict among unit clauses caught at
// load time, before any search: some variable is forced both true and
// false. Unlike ordinary unsatisfiability, a contradiction can never
// be repaired by a different horizon.
type ContradictionError struct {
	Var int
}

func (e ContradictionError) Error() string {
	return fmt.Sprintf("unit clauses force variable %d both true and false", e.Var)
}

// TimeoutError reports that the solve deadline expired before the
// backend reached a verdict.
type TimeoutError struct {
	Elapsed time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("solver timed out after %s", e.Elapsed)
}

// Backend constructs independent solver instances. An instance handles
// exactly one formula; searches over several formulas build a fresh
// instance for each.
type Backend interface {
	// Name identifies the backend in flags and logs.
	Name() string

	// New allocates an instance over vars variables, numbered 1
	// through vars.
	New(vars int) Instance
}

// Instance is a single-use solver: load one clause set, then solve it
// once.
type Instance interface {
	// Load adds the clause set to the instance. It returns a
	// ContradictionError when the unit clauses alone already
	// conflict.
	Load(clauses [][]int) error

	// Solve blocks until a verdict or until ctx is done. It returns
	// a Model on satisfiability, ErrUnsatisfiable on proven
	// unsatisfiability, a TimeoutError when ctx's deadline expired
	// first, and ctx's error for any other cancellation.
	Solve(ctx context.Context) (Model, error)
}

// checkUnits scans a clause set for conflicts among its unit clauses.
// Neither backend reports such conflicts distinctly from ordinary
// unsatisfiability, and they have to surface as a ContradictionError
// rather than as a verdict a longer horizon might change.
func checkUnits(clauses [][]int) error {
	forced := map[int]int{}
	for _, clause := range clauses {
		if len(clause) != 1 {
			continue
		}
		lit := clause[0]
		v := lit
		if v < 0 {
			v = -v
		}
		if prev, ok := forced[v]; ok && prev != lit {
			return ContradictionError{Var: v}
		}
		forced[v] = lit
	}
	return nil
}

// ctxFault classifies a context-caused abort: deadline expiry becomes
// a TimeoutError, any other cancellation propagates as is.
func ctxFault(ctx context.Context, started time.Time) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return TimeoutError{Elapsed: time.Since(started)}
	}
	return ctx.Err()
}
