// Package encoding translates a ground planning problem at a fixed
// horizon into a CNF formula, and a satisfying model back into a plan.
package encoding

// Vars is the deterministic numbering of propositional variables for
// one problem's fluents and actions across time steps. Every id is a
// pure function of the problem's fluent and action counts, so the
// clause generators and the plan decoder can compute the mapping
// independently without shared allocation state.
//
// With stride S equal to fluents plus actions, the layout is
//
//	fluent f at step t: S*t + 1 + f
//	action a at step t: S*t + 1 + fluents + a
//
// Fluents occupy steps 0 through the horizon inclusive; actions occupy
// steps 0 through horizon-1. Ids are monotonic in step.
type Vars struct {
	fluents int
	actions int
	stride  int
}

// NewVars returns the variable numbering for a problem with the given
// fluent and action counts.
func NewVars(fluents, actions int) Vars {
	return Vars{fluents: fluents, actions: actions, stride: fluents + actions}
}

// Fluent returns the id of fluent index f at step t.
func (v Vars) Fluent(f, t int) int {
	return v.stride*t + 1 + f
}

// Action returns the id of action index a at step t.
func (v Vars) Action(a, t int) int {
	return v.stride*t + 1 + v.fluents + a
}

// Count returns the number of variables a formula at the given horizon
// uses. Ids 1 through Count(horizon) are all allocated; there are no
// gaps.
func (v Vars) Count(horizon int) int {
	return v.stride*horizon + v.fluents
}

// FluentAt inverts Fluent, reporting the fluent index and step that id
// stands for. ok is false when id stands for an action or lies outside
// the layout.
func (v Vars) FluentAt(id int) (f, t int, ok bool) {
	if id < 1 || v.stride == 0 {
		return 0, 0, false
	}
	r := (id - 1) % v.stride
	if r >= v.fluents {
		return 0, 0, false
	}
	return r, (id - 1) / v.stride, true
}

// ActionAt inverts Action, reporting the action index and step that id
// stands for. ok is false when id stands for a fluent or lies outside
// the layout.
func (v Vars) ActionAt(id int) (a, t int, ok bool) {
	if id < 1 || v.stride == 0 {
		return 0, 0, false
	}
	r := (id - 1) % v.stride
	if r < v.fluents {
		return 0, 0, false
	}
	return r - v.fluents, (id - 1) / v.stride, true
}
