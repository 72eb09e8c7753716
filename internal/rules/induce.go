package rules

import "github.com/fgrzeskowiak/rulelearn/internal/induction"

// FromInducedRules wraps a whole induction run's output into a RuleSet,
// minting one id per rule from gen.
func FromInducedRules(induced []induction.InducedRule, gen RuleIDGenerator) *RuleSet {
	out := make([]Rule, len(induced))
	for i, ir := range induced {
		out[i] = FromInducedRule(ir, gen)
	}
	return NewRuleSet(out...)
}
