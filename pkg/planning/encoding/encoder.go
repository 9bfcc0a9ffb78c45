package encoding

import (
	"fmt"

	"github.com/plan-framework/satplan/pkg/planning"
)

// Encoder builds the CNF rendition of one ground problem at any
// horizon. It holds only problem statics, the variable numbering and
// the per-fluent effect adjacency; nothing carries over between
// horizons, and every Encode call builds its formula from scratch.
type Encoder struct {
	problem *planning.Problem
	vars    Vars

	// makers[f] and breakers[f] hold, in ascending index order, the
	// actions whose effect asserts fluent f true or false.
	makers   [][]int
	breakers [][]int
}

// NewEncoder returns an encoder for the given problem.
func NewEncoder(problem *planning.Problem) *Encoder {
	e := &Encoder{
		problem:  problem,
		vars:     NewVars(len(problem.Fluents), len(problem.Actions)),
		makers:   make([][]int, len(problem.Fluents)),
		breakers: make([][]int, len(problem.Fluents)),
	}
	for a := range problem.Actions {
		action := &problem.Actions[a]
		action.Effect.Pos.Each(func(f int) {
			e.makers[f] = append(e.makers[f], a)
		})
		action.Effect.Neg.Each(func(f int) {
			e.breakers[f] = append(e.breakers[f], a)
		})
	}
	return e
}

// Vars returns the encoder's variable numbering.
func (e *Encoder) Vars() Vars {
	return e.vars
}

// Encode returns the complete formula for the given horizon. The
// clause families appear in a fixed order: initial state, goal, action
// constraints, frame axioms, mutual exclusion.
func (e *Encoder) Encode(horizon int) CNF {
	clauses := e.InitialState()
	clauses = append(clauses, e.Goal(horizon)...)
	clauses = append(clauses, e.ActionConstraints(horizon)...)
	clauses = append(clauses, e.FrameAxioms(horizon)...)
	clauses = append(clauses, e.MutualExclusion(horizon)...)
	return CNF{Variables: e.vars.Count(horizon), Clauses: clauses}
}

// InitialState emits one unit clause per fluent at step 0: positive
// for members of the initial set, negative for everything else. No
// fluent starts unconstrained.
func (e *Encoder) InitialState() [][]int {
	clauses := make([][]int, 0, len(e.problem.Fluents))
	for f := range e.problem.Fluents {
		id := e.vars.Fluent(f, 0)
		if e.problem.Init.Contains(f) {
			clauses = append(clauses, []int{id})
		} else {
			clauses = append(clauses, []int{-id})
		}
	}
	return clauses
}

// Goal emits one positive unit clause per goal fluent at the final
// step.
func (e *Encoder) Goal(horizon int) [][]int {
	clauses := make([][]int, 0, e.problem.Goal.Len())
	e.problem.Goal.Each(func(f int) {
		clauses = append(clauses, []int{e.vars.Fluent(f, horizon)})
	})
	return clauses
}

// ActionConstraints emits, for every action occurrence, the binary
// implications that its precondition holds at the step it fires and
// its effect holds at the next step.
func (e *Encoder) ActionConstraints(horizon int) [][]int {
	var clauses [][]int
	for t := 0; t < horizon; t++ {
		for a := range e.problem.Actions {
			action := &e.problem.Actions[a]
			occurs := e.vars.Action(a, t)
			step := t
			action.Precondition.Pos.Each(func(f int) {
				clauses = append(clauses, []int{-occurs, e.vars.Fluent(f, step)})
			})
			action.Precondition.Neg.Each(func(f int) {
				clauses = append(clauses, []int{-occurs, -e.vars.Fluent(f, step)})
			})
			action.Effect.Pos.Each(func(f int) {
				clauses = append(clauses, []int{-occurs, e.vars.Fluent(f, step+1)})
			})
			action.Effect.Neg.Each(func(f int) {
				clauses = append(clauses, []int{-occurs, -e.vars.Fluent(f, step+1)})
			})
		}
	}
	return clauses
}

// FrameAxioms emits the explanatory clauses that tie every truth-value
// change between consecutive steps to an action able to cause it: a
// false-to-true transition requires one of the fluent's makers to fire
// at that step, and a true-to-false transition one of its breakers. A
// fluent with no makers, or no breakers, contributes no clause for
// that direction.
func (e *Encoder) FrameAxioms(horizon int) [][]int {
	var clauses [][]int
	for f := range e.problem.Fluents {
		for t := 0; t < horizon; t++ {
			if len(e.makers[f]) > 0 {
				clause := make([]int, 0, 2+len(e.makers[f]))
				clause = append(clause, e.vars.Fluent(f, t), -e.vars.Fluent(f, t+1))
				for _, a := range e.makers[f] {
					clause = append(clause, e.vars.Action(a, t))
				}
				clauses = append(clauses, clause)
			}
			if len(e.breakers[f]) > 0 {
				clause := make([]int, 0, 2+len(e.breakers[f]))
				clause = append(clause, -e.vars.Fluent(f, t), e.vars.Fluent(f, t+1))
				for _, a := range e.breakers[f] {
					clause = append(clause, e.vars.Action(a, t))
				}
				clauses = append(clauses, clause)
			}
		}
	}
	return clauses
}

// MutualExclusion emits, for every step and every unordered pair of
// distinct actions, a clause forbidding both from firing at that step.
// Plans are strictly sequential; a step may also stay idle.
func (e *Encoder) MutualExclusion(horizon int) [][]int {
	n := len(e.problem.Actions)
	var clauses [][]int
	for t := 0; t < horizon; t++ {
		for a1 := 0; a1 < n; a1++ {
			for a2 := a1 + 1; a2 < n; a2++ {
				clauses = append(clauses, []int{-e.vars.Action(a1, t), -e.vars.Action(a2, t)})
			}
		}
	}
	return clauses
}

// DecodePlan reads a satisfying model, in signed ascending-id layout,
// back into the action sequence it encodes. Ids are monotonic in step,
// so one ascending scan yields the plan already in time order. Idle
// steps decode to nothing.
func (e *Encoder) DecodePlan(model []int) (planning.Plan, error) {
	var plan planning.Plan
	lastStep := -1
	for _, lit := range model {
		if lit <= 0 {
			continue
		}
		a, t, ok := e.vars.ActionAt(lit)
		if !ok {
			continue
		}
		if t == lastStep {
			return nil, fmt.Errorf("model selects two actions at step %d", t)
		}
		lastStep = t
		plan = append(plan, e.problem.Actions[a])
	}
	return plan, nil
}
