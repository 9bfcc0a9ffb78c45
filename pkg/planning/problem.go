// Package planning defines the ground planning vocabulary shared by
// every stage of the pipeline: fluents, actions, problems, and plans.
package planning

// Fluent is a ground boolean proposition about world state. Fluents
// are identified by their position in the owning problem's fluent
// list; the name only serves diagnostics and serialization.
type Fluent string

// Literals pairs the fluents a condition requires or asserts true
// (Pos) with those it requires or asserts false (Neg). Members are
// indices into the owning problem's fluent list.
type Literals struct {
	Pos FluentSet
	Neg FluentSet
}

// Action is a ground operator. Its precondition must hold at the step
// the action occurs, and its effect holds at the following step.
type Action struct {
	Name         string
	Precondition Literals
	Effect       Literals
}

// Problem is a ground, propositional planning problem. Fluent and
// action indices are stable for the problem's whole lifetime; every
// fluent set refers to positions in Fluents.
type Problem struct {
	Name         string
	Requirements []Requirement
	Fluents      []Fluent
	Actions      []Action

	// Init lists the fluents true at step 0. Any fluent absent from
	// the set is false at step 0, never unknown.
	Init FluentSet

	// Goal lists the fluents that must be true at the final step.
	// Goals on fluent falsity are not representable.
	Goal FluentSet
}

// Plan is a totally ordered action sequence, one action per occupied
// time step, in increasing step order.
type Plan []Action
