package encoding

// CNF is a conjunction of clauses over Variables boolean variables,
// numbered 1 through Variables. Each clause is a disjunction of
// non-zero DIMACS-coded literals: a positive literal asserts its
// variable and a negative literal refutes it. Clause order never
// affects satisfiability, but it is deterministic so that encoding the
// same problem at the same horizon twice yields identical formulas.
type CNF struct {
	Variables int
	Clauses   [][]int
}
