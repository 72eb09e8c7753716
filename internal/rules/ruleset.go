package rules

// RuleSet is an ordered, deduplicated collection of induced rules.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet builds a RuleSet from rs, preserving order and dropping
// duplicate ids.
func NewRuleSet(rs ...Rule) *RuleSet {
	set := &RuleSet{}
	seen := make(map[string]bool, len(rs))
	for _, r := range rs {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		set.rules = append(set.rules, r)
	}
	return set
}

// Rules returns the rule set's members in insertion order.
func (s *RuleSet) Rules() []Rule {
	return s.rules
}

// Len reports how many rules s holds.
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// Join merges a and b into a new RuleSet, keeping a's copy of any rule
// that appears (by id) in both.
func Join(a, b *RuleSet) *RuleSet {
	merged := make([]Rule, 0, a.Len()+b.Len())
	merged = append(merged, a.Rules()...)
	merged = append(merged, b.Rules()...)
	return NewRuleSet(merged...)
}
