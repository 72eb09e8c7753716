package induction

import (
	"sort"

	"github.com/fgrzeskowiak/rulelearn/internal/approx"
	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/rulecond"
	"github.com/fgrzeskowiak/rulelearn/internal/ruleconditions"
	"github.com/fgrzeskowiak/rulelearn/internal/values"
)

// RuleType selects which elementary-condition phrasing the generator
// builds: certain rules use threshold-vs-object, possible rules use
// object-vs-threshold (SPEC_FULL.md §3 C6/C8).
type RuleType int

const (
	Certain RuleType = iota
	Possible
)

// M4OptimizedGenerator picks the best next elementary condition to add
// to a RuleConditions, ranked lexicographically by an ordered list of
// ConditionEvaluator, per spec.md §4.7. For ordinal (Int/Real) active
// condition attributes it narrows the scan using the
// least-restrictive/most-restrictive extreme and only widens it when
// the lead evaluator's monotonicity isn't uniform across the whole
// list; for pair-valued or nominal attributes it falls back to scanning
// every candidate value unconditionally.
type M4OptimizedGenerator struct {
	evaluators []ConditionEvaluator
	unionType  approx.Type
	ruleType   RuleType
}

// NewM4OptimizedGenerator builds a generator for one union's induction
// run. evaluators must be non-empty and switch monotonicity type at
// most once.
func NewM4OptimizedGenerator(evaluators []ConditionEvaluator, unionType approx.Type, ruleType RuleType) (*M4OptimizedGenerator, error) {
	if err := validateEvaluators(evaluators); err != nil {
		return nil, err
	}
	return &M4OptimizedGenerator{evaluators: evaluators, unionType: unionType, ruleType: ruleType}, nil
}

type candidateValue struct {
	raw        values.Value
	transformed float64
}

// GetBestCondition scans every active condition attribute not already
// used by rc for the best candidate elementary condition, restricted to
// values observed among consideredObjects.
func (g *M4OptimizedGenerator) GetBestCondition(table *data.InformationTable, consideredObjects []int, rc *ruleconditions.RuleConditions) (rulecond.Condition, error) {
	var best rulecond.Condition
	haveBest := false
	var bestScores []float64

	for _, attrIdx := range table.ActiveConditionAttributeIndices() {
		attr := table.Attribute(attrIdx)
		if rc.HasConditionForAttribute(attrIdx) {
			continue
		}

		if !attr.IsOrdinal() || attr.ValueKind == data.KindPair {
			candidates := collectAllCandidateValues(table, attrIdx, consideredObjects)
			if len(candidates) == 0 {
				continue
			}
			g.scanAll(table, attrIdx, attr, candidates, rc, &best, &haveBest, &bestScores)
			continue
		}

		candidates := collectCandidateValues(table, attrIdx, consideredObjects, g.multiplier(attr))
		if len(candidates) == 0 {
			continue
		}
		g.scanOptimized(table, attrIdx, attr, candidates, rc, &best, &haveBest, &bestScores)
	}

	if !haveBest {
		return rulecond.Condition{}, &ElementaryConditionNotFoundError{
			Reason: "no active condition attribute yields a usable candidate for the current considered objects",
		}
	}
	return best, nil
}

func (g *M4OptimizedGenerator) multiplier(attr data.Attribute) float64 {
	gainSign := 1.0
	if attr.Preference == values.Cost {
		gainSign = -1.0
	}
	atLeastSign := 1.0
	if g.unionType == approx.AtMost {
		atLeastSign = -1.0
	}
	return gainSign * atLeastSign
}

func (g *M4OptimizedGenerator) buildCondition(attrIdx int, attr data.Attribute, limit values.Value) rulecond.Condition {
	atLeast := g.unionType == approx.AtLeast
	if g.ruleType == Certain {
		return rulecond.ThresholdVsObjectFor(attrIdx, attr.Preference, atLeast, limit)
	}
	return rulecond.ObjectVsThresholdFor(attrIdx, attr.Preference, atLeast, limit)
}

// scanOptimized picks the least/most restrictive extreme first, then
// (if the evaluator list's monotonicity isn't uniform) widens the scan
// across the remaining candidates until the first strictly worse one,
// since monotonicity guarantees nothing further in that direction can
// improve on it.
func (g *M4OptimizedGenerator) scanOptimized(table *data.InformationTable, attrIdx int, attr data.Attribute, candidates []candidateValue, rc *ruleconditions.RuleConditions, best *rulecond.Condition, haveBest *bool, bestScores *[]float64) {
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].transformed < candidates[j].transformed })

	checkLessExtreme := false
	for i := 1; i < len(g.evaluators); i++ {
		if g.evaluators[i].Monotonicity() != g.evaluators[0].Monotonicity() {
			checkLessExtreme = true
			break
		}
	}

	extremeIdx := 0
	if g.evaluators[0].Monotonicity() == DeterioratesWithNumberOfCoveredObjects {
		extremeIdx = len(candidates) - 1
	}

	order := []int{extremeIdx}
	if checkLessExtreme {
		for i := range candidates {
			if i != extremeIdx {
				order = append(order, i)
			}
		}
		// walk outward from the extreme so monotonic deterioration can
		// short-circuit the scan.
		sort.Slice(order[1:], func(a, b int) bool {
			return abs(candidates[order[1:][a]].transformed-candidates[extremeIdx].transformed) <
				abs(candidates[order[1:][b]].transformed-candidates[extremeIdx].transformed)
		})
	}

	var lastScores []float64
	for n, idx := range order {
		c := g.buildCondition(attrIdx, attr, candidates[idx].raw)
		scores := g.evaluate(rc, c)

		if n > 0 && lastScores != nil && !lexicographicAtLeast(g.evaluators, scores, lastScores) {
			break
		}
		lastScores = scores

		if !*haveBest || lexicographicStrictlyBetter(g.evaluators, scores, *bestScores) {
			*best = c
			*haveBest = true
			*bestScores = scores
		}
	}
}

// scanAll evaluates every candidate unconditionally - the fallback path
// for pair-valued attributes, which the optimized interval scan does
// not support.
func (g *M4OptimizedGenerator) scanAll(table *data.InformationTable, attrIdx int, attr data.Attribute, candidates []candidateValue, rc *ruleconditions.RuleConditions, best *rulecond.Condition, haveBest *bool, bestScores *[]float64) {
	for _, cv := range candidates {
		c := g.buildCondition(attrIdx, attr, cv.raw)
		scores := g.evaluate(rc, c)
		if !*haveBest || lexicographicStrictlyBetter(g.evaluators, scores, *bestScores) {
			*best = c
			*haveBest = true
			*bestScores = scores
		}
	}
}

func (g *M4OptimizedGenerator) evaluate(rc *ruleconditions.RuleConditions, c rulecond.Condition) []float64 {
	scores := make([]float64, len(g.evaluators))
	for i, e := range g.evaluators {
		scores[i] = e.Evaluate(rc, c)
	}
	return scores
}

func lexicographicStrictlyBetter(evaluators []ConditionEvaluator, a, b []float64) bool {
	for i := range evaluators {
		if strictlyBetter(evaluators[i].MeasureType(), a[i], b[i]) {
			return true
		}
		if strictlyBetter(evaluators[i].MeasureType(), b[i], a[i]) {
			return false
		}
	}
	return false
}

func lexicographicAtLeast(evaluators []ConditionEvaluator, a, b []float64) bool {
	for i := range evaluators {
		if strictlyBetter(evaluators[i].MeasureType(), a[i], b[i]) {
			return true
		}
		if strictlyBetter(evaluators[i].MeasureType(), b[i], a[i]) {
			return false
		}
	}
	return true
}

func collectCandidateValues(table *data.InformationTable, attrIdx int, objects []int, multiplier float64) []candidateValue {
	seen := map[float64]bool{}
	var out []candidateValue
	for _, obj := range objects {
		v := table.GetField(obj, attrIdx)
		f, ok := numeric(v)
		if !ok {
			continue // missing or non-scalar evaluations are skipped as candidate limits
		}
		t := multiplier * f
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, candidateValue{raw: v, transformed: t})
	}
	return out
}

// collectAllCandidateValues gathers one candidate per distinct,
// non-missing evaluation among objects, raw value only - the feed for
// scanAll's unoptimized scan, which pair-valued and nominal
// (Preference == None) attributes both use since neither has the
// numeric ordering scanOptimized's interval narrowing depends on.
func collectAllCandidateValues(table *data.InformationTable, attrIdx int, objects []int) []candidateValue {
	seen := map[string]bool{}
	var out []candidateValue
	for _, obj := range objects {
		v := table.GetField(obj, attrIdx)
		if _, ok := v.(values.MissingValue); ok {
			continue
		}
		key := v.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, candidateValue{raw: v})
	}
	return out
}

func numeric(v values.Value) (float64, bool) {
	switch x := v.(type) {
	case values.IntValue:
		return float64(x), true
	case values.RealValue:
		return float64(x), true
	default:
		return 0, false
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
