package induction

import (
	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/ruleconditions"
)

// GrowRule builds a single rule's conditions from scratch by repeated
// calls to generator, stopping once stopChecker is satisfied or
// generator can no longer produce a new condition. positives are the
// objects this rule must end up covering; allowed is the full set of
// objects it is permitted to cover (typically a union's members plus
// its neutral objects); neutral is recorded on the resulting
// RuleConditions for downstream characteristic computation.
//
// Candidate limiting values are drawn only from the positive objects
// still covered by the rule under construction, narrowing as
// conditions accumulate - the same restriction DomLEM uses to keep
// candidate generation proportional to rule specificity rather than
// table size.
func GrowRule(table *data.InformationTable, generator *M4OptimizedGenerator, stopChecker StoppingConditionChecker, positives, allowed, neutral []int) (*ruleconditions.RuleConditions, error) {
	rc := ruleconditions.New(table, positives, positives, allowed, neutral)

	for !stopChecker.IsStoppingConditionFulfilled(rc) {
		considered := coveredAmong(rc, positives)
		cond, err := generator.GetBestCondition(table, considered, rc)
		if err != nil {
			return rc, err
		}
		rc.AddCondition(cond)
	}
	return rc, nil
}

func coveredAmong(rc *ruleconditions.RuleConditions, objects []int) []int {
	var out []int
	for _, i := range objects {
		if rc.Covers(i) {
			out = append(out, i)
		}
	}
	return out
}

// SequentialCover implements VC-DomLEM's outer loop (spec.md §4.8): it
// repeatedly grows a rule covering some of the still-uncovered
// positives, prunes its conditions, and removes its covered positives
// from the remaining set, until every positive is covered by some
// rule. Finally it drops whole rules the others already make
// redundant.
func SequentialCover(
	table *data.InformationTable,
	positives, allowed, neutral []int,
	generator *M4OptimizedGenerator,
	stopChecker StoppingConditionChecker,
	conditionPruner ConditionPruner,
	setPruner RuleConditionsSetPruner,
) ([]*ruleconditions.RuleConditions, error) {
	remaining := append([]int(nil), positives...)
	var result []*ruleconditions.RuleConditions

	for len(remaining) > 0 {
		rc, err := GrowRule(table, generator, stopChecker, remaining, allowed, neutral)
		if err != nil {
			return nil, err
		}
		conditionPruner.Prune(rc)
		result = append(result, rc)
		remaining = subtractCovered(rc, remaining)
	}

	return setPruner.Prune(result, positives), nil
}

func subtractCovered(rc *ruleconditions.RuleConditions, objects []int) []int {
	var out []int
	for _, i := range objects {
		if !rc.Covers(i) {
			out = append(out, i)
		}
	}
	return out
}
