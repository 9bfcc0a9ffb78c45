package planning

import "fmt"

// Requirement is a feature a problem declares itself to need, named by
// its PDDL requirement key.
type Requirement string

const (
	RequirementStrips                Requirement = ":strips"
	RequirementTyping                Requirement = ":typing"
	RequirementNegativePreconditions Requirement = ":negative-preconditions"
	RequirementEquality              Requirement = ":equality"
	RequirementActionCosts           Requirement = ":action-costs"
	RequirementConditionalEffects    Requirement = ":conditional-effects"
	RequirementConstraints           Requirement = ":constraints"
	RequirementContinuousEffects     Requirement = ":continuous-effects"
	RequirementDerivedPredicates     Requirement = ":derived-predicates"
	RequirementDurationInequalities  Requirement = ":duration-inequalities"
	RequirementDurativeActions       Requirement = ":durative-actions"
	RequirementFluents               Requirement = ":fluents"
	RequirementGoalUtilities         Requirement = ":goal-utilities"
	RequirementHierarchy             Requirement = ":hierarchy"
	RequirementMethodConstraints     Requirement = ":method-constraints"
	RequirementNumericFluents        Requirement = ":numeric-fluents"
	RequirementObjectFluents         Requirement = ":object-fluents"
	RequirementPreferences           Requirement = ":preferences"
	RequirementTimedInitialLiterals  Requirement = ":timed-initial-literals"
)

// UnsupportedRequirement is returned before any encoding work begins
// when a problem declares a feature the propositional encoding cannot
// express.
type UnsupportedRequirement Requirement

func (u UnsupportedRequirement) Error() string {
	return fmt.Sprintf("requirement %s is not supported by this encoding", string(u))
}

// supported is the encodable core: ground boolean fluents with
// positive and negative conditions and unconditional effects. Typing
// and equality only constrain grounding, which happens upstream.
var supported = map[Requirement]struct{}{
	RequirementStrips:                {},
	RequirementTyping:                {},
	RequirementNegativePreconditions: {},
	RequirementEquality:              {},
}

// CheckSupport rejects the first declared requirement outside the
// supported core. Requirements absent from the declaration are assumed
// absent from the problem.
func CheckSupport(p *Problem) error {
	for _, r := range p.Requirements {
		if _, ok := supported[r]; !ok {
			return UnsupportedRequirement(r)
		}
	}
	return nil
}
