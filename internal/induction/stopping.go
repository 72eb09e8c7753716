package induction

import "github.com/fgrzeskowiak/rulelearn/internal/ruleconditions"

// StoppingConditionChecker decides whether a rule under construction has
// accumulated enough conditions to stop adding more (SPEC_FULL.md §3
// C8, spec.md §4.8).
type StoppingConditionChecker interface {
	IsStoppingConditionFulfilled(rc *ruleconditions.RuleConditions) bool
}

// NegativeCoverageStoppingChecker stops once a rule's current conditions
// cover at most maxNegatives objects outside rc's allowed set - the
// objects truly outside the approximated union's consistent region.
// Objects the consistency measure and threshold already excluded from
// Lower() never appear in allowed, so maxNegatives = 0 is correct for
// both classical and variable-consistency induction: the threshold is
// baked into which objects qualify as positives upstream, not into this
// rule-level check.
type NegativeCoverageStoppingChecker struct {
	MaxNegatives int
}

func (c NegativeCoverageStoppingChecker) IsStoppingConditionFulfilled(rc *ruleconditions.RuleConditions) bool {
	return negativeCoverage(rc) <= c.MaxNegatives
}

// negativeCoverage counts covered objects that fall outside rc's
// allowed set entirely (i.e. the true complement of the approximated
// union, not merely objects outside the rule's positive seed).
func negativeCoverage(rc *ruleconditions.RuleConditions) int {
	allowed := toSet(rc.AllowedObjects())
	count := 0
	for i := 0; i < len(rc.NotCoveringConditionsCount()); i++ {
		if allowed[i] {
			continue
		}
		if rc.Covers(i) {
			count++
		}
	}
	return count
}
