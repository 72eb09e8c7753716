package data

import (
	"fmt"

	"github.com/fgrzeskowiak/rulelearn/internal/values"
)

// Decision is the tuple of active decision values assigned to one
// object. Most tables carry a SimpleDecision (exactly one active
// decision attribute); CompositeDecision supports the rarer case of
// several decision criteria combined into one ordinal tuple.
type Decision interface {
	// AttributeIndices returns the indices (into the owning table's
	// attribute list) of the attributes this decision is defined over,
	// in a stable order.
	AttributeIndices() []int
	// AtLeastAsGoodAs reports whether this decision dominates other on
	// every contributing attribute.
	AtLeastAsGoodAs(other Decision) values.TriLogic
	// AtMostAsGoodAs is the symmetric dual of AtLeastAsGoodAs.
	AtMostAsGoodAs(other Decision) values.TriLogic
	// Equal reports whether this decision and other are the same
	// decision class.
	Equal(other Decision) values.TriLogic
	// Key returns a comparable representation suitable for use as a
	// Go map key (e.g. in a decision-class distribution).
	Key() any
}

// SimpleDecision is a decision carried by exactly one active decision
// attribute - the common case.
type SimpleDecision struct {
	AttributeIndex int
	Value          values.Value
	Preference     values.PreferenceType
}

func (d SimpleDecision) AttributeIndices() []int { return []int{d.AttributeIndex} }

func (d SimpleDecision) AtLeastAsGoodAs(other Decision) values.TriLogic {
	o, ok := other.(SimpleDecision)
	if !ok || o.AttributeIndex != d.AttributeIndex {
		return values.Uncomparable
	}
	return values.AtLeastAsGoodAs(d.Value, o.Value, d.Preference)
}

func (d SimpleDecision) AtMostAsGoodAs(other Decision) values.TriLogic {
	o, ok := other.(SimpleDecision)
	if !ok || o.AttributeIndex != d.AttributeIndex {
		return values.Uncomparable
	}
	// AtMostAsGoodAs is AtLeastAsGoodAs with sense flipped.
	flipped := d.Preference
	switch d.Preference {
	case values.Gain:
		flipped = values.Cost
	case values.Cost:
		flipped = values.Gain
	}
	return values.AtLeastAsGoodAs(d.Value, o.Value, flipped)
}

func (d SimpleDecision) Equal(other Decision) values.TriLogic {
	o, ok := other.(SimpleDecision)
	if !ok || o.AttributeIndex != d.AttributeIndex {
		return values.Uncomparable
	}
	return values.Equal(d.Value, o.Value)
}

func (d SimpleDecision) Key() any {
	return simpleDecisionKey{attr: d.AttributeIndex, value: d.Value}
}

type simpleDecisionKey struct {
	attr  int
	value values.Value
}

// CompositeDecision combines several decision criteria into one ordinal
// tuple. A composite decision dominates another iff it is at-least-as-
// good on every contributing attribute; any single False coordinate
// makes the whole comparison False, otherwise any Uncomparable
// coordinate makes it Uncomparable.
type CompositeDecision struct {
	Coordinates []SimpleDecision
}

func (d CompositeDecision) AttributeIndices() []int {
	idx := make([]int, len(d.Coordinates))
	for i, c := range d.Coordinates {
		idx[i] = c.AttributeIndex
	}
	return idx
}

func (d CompositeDecision) AtLeastAsGoodAs(other Decision) values.TriLogic {
	o, ok := other.(CompositeDecision)
	if !ok || len(o.Coordinates) != len(d.Coordinates) {
		return values.Uncomparable
	}
	result := values.True
	for i, c := range d.Coordinates {
		r := c.AtLeastAsGoodAs(o.Coordinates[i])
		result = combineTri(result, r)
	}
	return result
}

func (d CompositeDecision) AtMostAsGoodAs(other Decision) values.TriLogic {
	o, ok := other.(CompositeDecision)
	if !ok || len(o.Coordinates) != len(d.Coordinates) {
		return values.Uncomparable
	}
	result := values.True
	for i, c := range d.Coordinates {
		r := c.AtMostAsGoodAs(o.Coordinates[i])
		result = combineTri(result, r)
	}
	return result
}

func (d CompositeDecision) Equal(other Decision) values.TriLogic {
	o, ok := other.(CompositeDecision)
	if !ok || len(o.Coordinates) != len(d.Coordinates) {
		return values.Uncomparable
	}
	result := values.True
	for i, c := range d.Coordinates {
		r := c.Equal(o.Coordinates[i])
		result = combineTri(result, r)
	}
	return result
}

func (d CompositeDecision) Key() any {
	keys := make([]any, len(d.Coordinates))
	for i, c := range d.Coordinates {
		keys[i] = c.Key()
	}
	return compositeDecisionKey{coords: fmt.Sprint(keys)}
}

type compositeDecisionKey struct {
	coords string
}

// combineTri ANDs two tri-logic values the way a multi-criteria
// dominance test does: a False coordinate makes the whole test False
// even if another coordinate is Uncomparable.
func combineTri(a, b values.TriLogic) values.TriLogic {
	if a == values.False || b == values.False {
		return values.False
	}
	if a == values.Uncomparable || b == values.Uncomparable {
		return values.Uncomparable
	}
	return values.True
}
