package ruleconditions

import (
	"sort"

	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/rulecond"
)

// RuleConditions is the ordered list of conditions accumulated so far
// for one rule, plus the bookkeeping the induction loop needs to
// evaluate candidate conditions cheaply: a per-object counter of how
// many stored conditions that object fails, and an attribute multiset
// supporting O(1) "does this rule already condition on attribute q"
// checks.
type RuleConditions struct {
	table *data.InformationTable

	positives []int
	base      []int
	allowed   []int
	neutral   []int

	conditions []rulecond.Condition

	notCoveringConditionsCount []int
	attributeMultiset          map[int]int
}

// New builds an empty RuleConditions over table, scoped to the given
// positive-object, base, allowed-coverage, and neutral-object sets.
func New(table *data.InformationTable, positives, base, allowed, neutral []int) *RuleConditions {
	return &RuleConditions{
		table:                      table,
		positives:                  append([]int(nil), positives...),
		base:                       append([]int(nil), base...),
		allowed:                    append([]int(nil), allowed...),
		neutral:                    append([]int(nil), neutral...),
		notCoveringConditionsCount: make([]int, table.NumObjects()),
		attributeMultiset:          make(map[int]int),
	}
}

// Conditions returns the conditions added so far, in insertion order.
func (rc *RuleConditions) Conditions() []rulecond.Condition {
	return rc.conditions
}

// PositiveObjects returns the rule's positive object set.
func (rc *RuleConditions) PositiveObjects() []int { return rc.positives }

// BaseObjects returns the base object set the condition generator draws
// candidate limiting values from.
func (rc *RuleConditions) BaseObjects() []int { return rc.base }

// AllowedObjects returns the set of objects this rule is permitted to
// cover.
func (rc *RuleConditions) AllowedObjects() []int { return rc.allowed }

// NeutralObjects returns the objects neutral to the approximated set
// this rule conditions was built for.
func (rc *RuleConditions) NeutralObjects() []int { return rc.neutral }

// AddCondition appends c and updates the coverage counters: every
// object that fails c has its counter incremented. Amortized O(N) in
// the number of objects.
func (rc *RuleConditions) AddCondition(c rulecond.Condition) {
	rc.conditions = append(rc.conditions, c)
	rc.attributeMultiset[c.AttributeIndex]++

	for i := 0; i < rc.table.NumObjects(); i++ {
		if !c.SatisfiedBy(i, rc.table) {
			rc.notCoveringConditionsCount[i]++
		}
	}
}

// InsertConditionAt re-adds c at position k, shifting conditions at or
// after k one slot later. Used to restore a condition a pruning pass
// speculatively removed, keeping the original insertion order.
func (rc *RuleConditions) InsertConditionAt(k int, c rulecond.Condition) {
	rc.conditions = append(rc.conditions, rulecond.Condition{})
	copy(rc.conditions[k+1:], rc.conditions[k:])
	rc.conditions[k] = c

	rc.attributeMultiset[c.AttributeIndex]++

	for i := 0; i < rc.table.NumObjects(); i++ {
		if !c.SatisfiedBy(i, rc.table) {
			rc.notCoveringConditionsCount[i]++
		}
	}
}

// RemoveCondition removes the condition at index k and reverses its
// delta: every object that failed it has its counter decremented.
// Counter monotonicity means this is correct regardless of what has
// been added or removed since, as long as k still names the condition
// being undone.
func (rc *RuleConditions) RemoveCondition(k int) {
	c := rc.conditions[k]
	rc.conditions = append(rc.conditions[:k], rc.conditions[k+1:]...)

	rc.attributeMultiset[c.AttributeIndex]--
	if rc.attributeMultiset[c.AttributeIndex] <= 0 {
		delete(rc.attributeMultiset, c.AttributeIndex)
	}

	for i := 0; i < rc.table.NumObjects(); i++ {
		if !c.SatisfiedBy(i, rc.table) {
			rc.notCoveringConditionsCount[i]--
		}
	}
}

// Covers reports whether object i satisfies every stored condition, via
// the O(1) counter lookup.
func (rc *RuleConditions) Covers(i int) bool {
	return rc.notCoveringConditionsCount[i] == 0
}

// CoversByRecheck reports the same thing as Covers but by re-evaluating
// every condition against i, for verification against the counter.
func (rc *RuleConditions) CoversByRecheck(i int) bool {
	for _, c := range rc.conditions {
		if !c.SatisfiedBy(i, rc.table) {
			return false
		}
	}
	return true
}

// CoveredObjectsIterator returns the indices of currently covered
// objects, in ascending order.
func (rc *RuleConditions) CoveredObjectsIterator() []int {
	var covered []int
	for i := 0; i < len(rc.notCoveringConditionsCount); i++ {
		if rc.Covers(i) {
			covered = append(covered, i)
		}
	}
	return covered
}

// HasConditionForAttribute reports whether any stored condition already
// conditions on attribute q.
func (rc *RuleConditions) HasConditionForAttribute(q int) bool {
	return rc.attributeMultiset[q] > 0
}

// IndicesOfCoveredObjectsWithCondition simulates adding c without
// mutating rc, and returns which currently-covered objects would
// remain covered. The result is a fresh slice, safe to retain.
func (rc *RuleConditions) IndicesOfCoveredObjectsWithCondition(c rulecond.Condition) []int {
	var result []int
	for i := 0; i < len(rc.notCoveringConditionsCount); i++ {
		if rc.Covers(i) && c.SatisfiedBy(i, rc.table) {
			result = append(result, i)
		}
	}
	sort.Ints(result)
	return result
}

// NotCoveringConditionsCount exposes the raw counter array, mainly for
// tests verifying the incremental bookkeeping invariant directly.
func (rc *RuleConditions) NotCoveringConditionsCount() []int {
	return append([]int(nil), rc.notCoveringConditionsCount...)
}
