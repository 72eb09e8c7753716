package induction

import (
	"github.com/fgrzeskowiak/rulelearn/internal/rulecond"
	"github.com/fgrzeskowiak/rulelearn/internal/ruleconditions"
)

// ConditionPruner removes redundant elementary conditions from a
// finished rule's condition set, oldest first, keeping a removal only
// when the stopping condition still holds without it (spec.md §4.8
// pruning step).
type ConditionPruner struct {
	Checker StoppingConditionChecker
}

// Prune mutates rc in place, trying conditions in the order they were
// added (index 0 first) and permanently dropping any whose removal
// leaves the stopping condition satisfied.
func (p ConditionPruner) Prune(rc *ruleconditions.RuleConditions) {
	i := 0
	for i < len(rc.Conditions()) {
		c := rc.Conditions()[i]
		rc.RemoveCondition(i)
		if p.Checker.IsStoppingConditionFulfilled(rc) {
			continue // dropped; the next condition has shifted into position i
		}
		rc.InsertConditionAt(i, c)
		i++
	}
}

// RuleMinimalityChecker reports whether a candidate rule's condition
// set is minimal with respect to an already-induced RuleSet: no
// existing rule's condition set is a strict subset of the candidate's
// (spec.md §8 property 8).
type RuleMinimalityChecker struct{}

// IsMinimal reports whether candidate is not made redundant by any rule
// already accepted into already: it fails minimality if some
// already-accepted rule's conditions are a strict subset of
// candidate's.
func (RuleMinimalityChecker) IsMinimal(candidate *ruleconditions.RuleConditions, already []*ruleconditions.RuleConditions) bool {
	for _, existing := range already {
		if isConditionSubset(existing, candidate) {
			return false
		}
	}
	return true
}

func isConditionSubset(smaller, larger *ruleconditions.RuleConditions) bool {
	if len(smaller.Conditions()) >= len(larger.Conditions()) {
		return false
	}
	for _, c := range smaller.Conditions() {
		if !containsCondition(larger.Conditions(), c) {
			return false
		}
	}
	return true
}

func containsCondition(conditions []rulecond.Condition, c rulecond.Condition) bool {
	for _, other := range conditions {
		if other == c {
			return true
		}
	}
	return false
}

// RuleConditionsSetPruner removes whole rules from an induced set when
// the rules remaining without them still cover every object the full
// set covered (spec.md §4.8, the set-level redundancy pass that follows
// per-rule condition pruning). It tries rules oldest first, the same
// order ConditionPruner uses within one rule.
type RuleConditionsSetPruner struct{}

// Prune returns the subset of ruleSet that remains after dropping every
// rule whose coverage was already subsumed by the others, evaluated
// against mustCover (typically the union of all rules' positive
// objects).
func (RuleConditionsSetPruner) Prune(ruleSet []*ruleconditions.RuleConditions, mustCover []int) []*ruleconditions.RuleConditions {
	kept := append([]*ruleconditions.RuleConditions(nil), ruleSet...)

	i := 0
	for i < len(kept) {
		without := append(append([]*ruleconditions.RuleConditions(nil), kept[:i]...), kept[i+1:]...)
		if coversAll(without, mustCover) {
			kept = without
			continue
		}
		i++
	}
	return kept
}

func coversAll(ruleSet []*ruleconditions.RuleConditions, objects []int) bool {
	for _, obj := range objects {
		covered := false
		for _, rc := range ruleSet {
			if rc.Covers(obj) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}
