// Package rules models induced decision rules: an LHS of elementary
// conditions plus a disjunctive decision head, together with the
// rule-set container and coverage statistics built on top of it.
package rules

import (
	"fmt"
	"strings"

	"github.com/fgrzeskowiak/rulelearn/internal/approx"
	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/induction"
	"github.com/fgrzeskowiak/rulelearn/internal/rulecond"
	"github.com/fgrzeskowiak/rulelearn/internal/values"
)

// Type is the certainty class of a rule, per spec.md §4.9.
type Type int

const (
	Certain Type = iota
	Possible
	Approximate
)

func (t Type) String() string {
	switch t {
	case Possible:
		return "possible"
	case Approximate:
		return "approximate"
	default:
		return "certain"
	}
}

// Semantics is the relation a rule's decision head asserts between the
// covered object's decision and the limiting decision.
type Semantics int

const (
	AtLeast Semantics = iota
	AtMost
	Equal
)

func (s Semantics) String() string {
	switch s {
	case AtMost:
		return "<="
	case Equal:
		return "=="
	default:
		return ">="
	}
}

// Rule is an induced decision rule: conjunctive LHS conditions plus a
// disjunctive decision head, identified by an RFC 4122 id so rule sets
// can be joined and deduplicated across induction runs.
type Rule struct {
	ID         string
	Type       Type
	Semantics  Semantics
	Conditions []rulecond.Condition
	Limiting   data.Decision
}

// Covers reports whether object i of table satisfies every one of the
// rule's LHS conditions.
func (r Rule) Covers(i int, table *data.InformationTable) bool {
	for _, c := range r.Conditions {
		if !c.SatisfiedBy(i, table) {
			return false
		}
	}
	return true
}

// Recommends reports whether an object's decision matches the rule's
// head - the same membership test an induced rule was built to certify.
func (r Rule) Recommends(dec data.Decision) bool {
	switch r.Semantics {
	case AtMost:
		return dec.AtMostAsGoodAs(r.Limiting) == values.True
	case Equal:
		return dec.Equal(r.Limiting) == values.True
	default:
		return dec.AtLeastAsGoodAs(r.Limiting) == values.True
	}
}

func (r Rule) String() string {
	parts := make([]string, len(r.Conditions))
	for i, c := range r.Conditions {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s: IF %s THEN decision %s %v", r.Type, strings.Join(parts, " AND "), r.Semantics, r.Limiting)
}

// FromInducedRule wraps an induction.InducedRule into a Rule, minting a
// fresh id from gen. This is the only bridge from internal/induction
// into internal/rules - induction never imports rules back, so the
// dependency stays one-directional.
func FromInducedRule(ir induction.InducedRule, gen RuleIDGenerator) Rule {
	semantics := AtLeast
	if ir.Type == approx.AtMost {
		semantics = AtMost
	}
	return Rule{
		ID:         gen.Generate(),
		Type:       Certain,
		Semantics:  semantics,
		Conditions: append([]rulecond.Condition(nil), ir.Conditions.Conditions()...),
		Limiting:   ir.Limiting,
	}
}
