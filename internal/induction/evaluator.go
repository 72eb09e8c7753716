package induction

import (
	"github.com/fgrzeskowiak/rulelearn/internal/rulecond"
	"github.com/fgrzeskowiak/rulelearn/internal/ruleconditions"
)

// MeasureType is the direction in which a ConditionEvaluator's values
// improve.
type MeasureType int

const (
	Gain MeasureType = iota
	Cost
)

// MonotonicityType declares how an evaluator's value responds to
// adding more covered objects.
type MonotonicityType int

const (
	ImprovesWithNumberOfCoveredObjects MonotonicityType = iota
	DeterioratesWithNumberOfCoveredObjects
)

// ConditionEvaluator ranks a candidate condition's quality for a rule
// under construction. Condition generators consult an ordered list of
// these, comparing lexicographically.
type ConditionEvaluator interface {
	MeasureType() MeasureType
	Monotonicity() MonotonicityType
	Evaluate(rc *ruleconditions.RuleConditions, candidate rulecond.Condition) float64
}

// validateEvaluators enforces the §4.7 contract that the list may
// switch monotonicity type at most once.
func validateEvaluators(evaluators []ConditionEvaluator) error {
	if len(evaluators) == 0 {
		return invalidInput(ErrNoEvaluators, "condition generator requires at least one evaluator")
	}
	switches := 0
	for i := 1; i < len(evaluators); i++ {
		if evaluators[i].Monotonicity() != evaluators[i-1].Monotonicity() {
			switches++
		}
	}
	if switches > 1 {
		return invalidInput(ErrEvaluatorMonotonicitySwitchesTwice,
			"evaluator list switches monotonicity type %d times, at most 1 allowed", switches)
	}
	return nil
}

// betterOrEqual reports whether a's evaluation is at least as good as
// b's under measureType.
func betterOrEqual(measureType MeasureType, a, b float64) bool {
	if measureType == Gain {
		return a >= b
	}
	return a <= b
}

func strictlyBetter(measureType MeasureType, a, b float64) bool {
	if measureType == Gain {
		return a > b
	}
	return a < b
}

// PositiveCoverageEvaluator counts how many of the rule's positive
// objects a candidate condition would keep covered. Gain, improves with
// coverage: more covered positives is always at least as good.
type PositiveCoverageEvaluator struct{}

func (PositiveCoverageEvaluator) MeasureType() MeasureType { return Gain }
func (PositiveCoverageEvaluator) Monotonicity() MonotonicityType {
	return ImprovesWithNumberOfCoveredObjects
}

func (PositiveCoverageEvaluator) Evaluate(rc *ruleconditions.RuleConditions, candidate rulecond.Condition) float64 {
	covered := rc.IndicesOfCoveredObjectsWithCondition(candidate)
	positives := toSet(rc.PositiveObjects())
	count := 0
	for _, i := range covered {
		if positives[i] {
			count++
		}
	}
	return float64(count)
}

// NegativeCoverageEvaluator counts how many objects outside rc's
// allowed set a candidate condition would keep covered - the objects
// truly outside the approximated union's consistent region. Cost,
// deteriorates with coverage: a wider condition only ever admits more
// or the same negatives, never fewer. This is the primary evaluator for
// certain-rule induction: a rule must drive negative coverage to zero
// before anything else matters.
type NegativeCoverageEvaluator struct{}

func (NegativeCoverageEvaluator) MeasureType() MeasureType { return Cost }
func (NegativeCoverageEvaluator) Monotonicity() MonotonicityType {
	return DeterioratesWithNumberOfCoveredObjects
}

func (NegativeCoverageEvaluator) Evaluate(rc *ruleconditions.RuleConditions, candidate rulecond.Condition) float64 {
	allowed := toSet(rc.AllowedObjects())
	count := 0
	for _, i := range rc.IndicesOfCoveredObjectsWithCondition(candidate) {
		if !allowed[i] {
			count++
		}
	}
	return float64(count)
}

// TotalCoverageEvaluator counts how many objects overall a candidate
// condition would keep covered. Cost, deteriorates with coverage: used
// as a tie-breaker preferring the more specific (fewer objects covered)
// of two candidates that tie on positive coverage.
type TotalCoverageEvaluator struct{}

func (TotalCoverageEvaluator) MeasureType() MeasureType { return Cost }
func (TotalCoverageEvaluator) Monotonicity() MonotonicityType {
	return DeterioratesWithNumberOfCoveredObjects
}

func (TotalCoverageEvaluator) Evaluate(rc *ruleconditions.RuleConditions, candidate rulecond.Condition) float64 {
	return float64(len(rc.IndicesOfCoveredObjectsWithCondition(candidate)))
}

func toSet(indices []int) map[int]bool {
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		set[i] = true
	}
	return set
}
