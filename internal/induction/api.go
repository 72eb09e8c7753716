package induction

import (
	"sort"

	"github.com/fgrzeskowiak/rulelearn/internal/approx"
	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/dominance"
	"github.com/fgrzeskowiak/rulelearn/internal/ruleconditions"
	"github.com/fgrzeskowiak/rulelearn/internal/values"
)

// InducedRule pairs a grown, pruned RuleConditions with the
// approximated union it certifies membership in. internal/rules wraps
// these into its Rule type; induction stops at the conditions level so
// it never needs to import rules (which would otherwise import back
// into induction for SequentialCover).
type InducedRule struct {
	Type       approx.Type
	Limiting   data.Decision
	UnionSize  int
	Conditions *ruleconditions.RuleConditions
}

// Characteristics holds the four standard rule-coverage statistics
// (support, strength, confidence, coverage), computed over the full
// table a rule was induced from.
type Characteristics struct {
	Support    int
	Strength   float64
	Confidence float64
	Coverage   float64
}

// InduceRules runs classical VC-DomLEM (ordinary DRSA, no consistency
// relaxation) over every non-trivial class union of table's active
// decision attribute, upward (AT_LEAST) first then downward (AT_MOST),
// per spec.md §4.8's final paragraph.
func InduceRules(table *data.InformationTable) ([]InducedRule, error) {
	return induceOverUnions(table, approx.ClassicalCalculator{})
}

// InduceRulesVC runs variable-consistency VC-DomLEM: Lower
// approximations admit an object only if every paired measure satisfies
// its threshold (internal/approx.VCRoughSetCalculator). Rule-level
// induction is otherwise identical to InduceRules - the consistency
// relaxation lives entirely in which objects qualify as positives.
func InduceRulesVC(table *data.InformationTable, measures []approx.ObjectConsistencyMeasure, thresholds []float64) ([]InducedRule, error) {
	calc, err := approx.NewVCRoughSetCalculator(measures, thresholds)
	if err != nil {
		return nil, err
	}
	return induceOverUnions(table, calc)
}

// InduceRulesWithThreshold is a single-measure convenience wrapper
// around InduceRulesVC.
func InduceRulesWithThreshold(table *data.InformationTable, measure approx.ObjectConsistencyMeasure, threshold float64) ([]InducedRule, error) {
	return InduceRulesVC(table, []approx.ObjectConsistencyMeasure{measure}, []float64{threshold})
}

// InduceRulesWithCharacteristics runs rules and attaches
// RuleCoverageInformation-equivalent statistics to each, computed
// against the same table.
func InduceRulesWithCharacteristics(table *data.InformationTable, rules []InducedRule) []Characteristics {
	out := make([]Characteristics, len(rules))
	n := table.NumObjects()
	for i, r := range rules {
		covered := r.Conditions.CoveredObjectsIterator()
		support := 0
		for _, obj := range covered {
			if dec, ok := table.GetDecision(obj); ok && isMemberOf(r.Type, r.Limiting, dec) {
				support++
			}
		}
		out[i] = Characteristics{
			Support:    support,
			Strength:   ratio(support, n),
			Confidence: ratio(support, len(covered)),
			Coverage:   ratio(support, r.UnionSize),
		}
	}
	return out
}

func isMemberOf(unionType approx.Type, limiting, dec data.Decision) bool {
	if unionType == approx.AtLeast {
		return dec.AtLeastAsGoodAs(limiting) == values.True
	}
	return dec.AtMostAsGoodAs(limiting) == values.True
}

func ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}

// induceOverUnions builds every non-trivial AT_LEAST then AT_MOST class
// union over table's decision classes and runs SequentialCover against
// each, using calc to compute its lower approximation. A union's new
// rule is dropped if an already-accepted rule's conditions are a strict
// subset of it, so the returned set stays minimal across unions, not
// just within one.
func induceOverUnions(table *data.InformationTable, calc approx.RoughSetCalculator) ([]InducedRule, error) {
	classes := distinctOrderedDecisions(table)
	if len(classes) < 2 {
		return nil, nil
	}

	cones := dominance.NewCones(table)
	checker := RuleMinimalityChecker{}

	var induced []InducedRule
	var accepted []*ruleconditions.RuleConditions
	for _, unionType := range []approx.Type{approx.AtLeast, approx.AtMost} {
		limitingDecisions := nonTrivialLimiting(classes, unionType)
		for _, limiting := range limitingDecisions {
			union, err := approx.NewUnion(table, cones, unionType, limiting, calc)
			if err != nil {
				return nil, err
			}
			rules, err := induceForUnion(table, union)
			if err != nil {
				return nil, err
			}
			for _, r := range rules {
				if !checker.IsMinimal(r.Conditions, accepted) {
					continue // already-accepted rule's LHS subsumes this one
				}
				accepted = append(accepted, r.Conditions)
				induced = append(induced, r)
			}
		}
	}
	return induced, nil
}

// nonTrivialLimiting drops the class whose union would be the whole
// universe: the worst class for AT_LEAST, the best class for AT_MOST.
func nonTrivialLimiting(classes []data.Decision, unionType approx.Type) []data.Decision {
	if len(classes) < 2 {
		return nil
	}
	if unionType == approx.AtLeast {
		return classes[1:]
	}
	return classes[:len(classes)-1]
}

func induceForUnion(table *data.InformationTable, union *approx.Union) ([]InducedRule, error) {
	positives := union.Lower()
	if len(positives) == 0 {
		return nil, nil
	}
	allowed := append(append([]int(nil), union.Objects()...), union.NeutralObjects()...)

	generator, err := NewM4OptimizedGenerator(
		[]ConditionEvaluator{NegativeCoverageEvaluator{}, PositiveCoverageEvaluator{}},
		union.Type(),
		Certain,
	)
	if err != nil {
		return nil, err
	}

	conditionSets, err := SequentialCover(
		table,
		positives,
		allowed,
		union.NeutralObjects(),
		generator,
		NegativeCoverageStoppingChecker{MaxNegatives: 0},
		ConditionPruner{Checker: NegativeCoverageStoppingChecker{MaxNegatives: 0}},
		RuleConditionsSetPruner{},
	)
	if err != nil {
		return nil, err
	}

	rules := make([]InducedRule, len(conditionSets))
	for i, rc := range conditionSets {
		rules[i] = InducedRule{
			Type:       union.Type(),
			Limiting:   union.LimitingDecision(),
			UnionSize:  len(union.Objects()),
			Conditions: rc,
		}
	}
	return rules, nil
}

// distinctOrderedDecisions collects one representative Decision per
// distinct decision class in table, sorted from worst to best by
// pairwise dominance comparison (insertion sort: cheap, and the number
// of decision classes is always small relative to object count).
func distinctOrderedDecisions(table *data.InformationTable) []data.Decision {
	seen := map[any]bool{}
	var classes []data.Decision
	for i := 0; i < table.NumObjects(); i++ {
		dec, ok := table.GetDecision(i)
		if !ok {
			continue
		}
		key := dec.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		classes = append(classes, dec)
	}

	sort.SliceStable(classes, func(i, j int) bool {
		return classes[j].AtLeastAsGoodAs(classes[i]) == values.True && classes[i].Equal(classes[j]) != values.True
	})
	return classes
}
