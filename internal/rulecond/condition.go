package rulecond

import (
	"fmt"

	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/values"
)

// Relation is the raw comparison a Condition applies, already resolved
// to a concrete direction by whatever built it (the condition
// generator flips gain/cost and AT_LEAST/AT_MOST into a fixed relation
// before a Condition is ever constructed - Condition itself applies it
// verbatim).
type Relation int

const (
	AtLeast Relation = iota
	AtMost
	Equal
)

func (r Relation) String() string {
	switch r {
	case AtMost:
		return "<="
	case Equal:
		return "=="
	default:
		return ">="
	}
}

// Variant selects which operand plays which role in the comparison:
// ThresholdVsObject evaluates Relation(Limit, objectValue) - the
// certain-rule phrasing ("q(x) >= t" is stored as threshold<=object,
// Relation=AtMost, Variant=ThresholdVsObject). ObjectVsThreshold
// evaluates Relation(objectValue, Limit) - the possible-rule phrasing.
type Variant int

const (
	ThresholdVsObject Variant = iota
	ObjectVsThreshold
)

func (v Variant) String() string {
	if v == ObjectVsThreshold {
		return "object-vs-threshold"
	}
	return "threshold-vs-object"
}

// Condition is an elementary test: does object i's evaluation on
// AttributeIndex relate to Limit the way Relation and Variant say it
// should. Conditions are immutable; Duplicate returns a value-semantic
// copy safe to hold independently of the original.
type Condition struct {
	AttributeIndex int
	Relation       Relation
	Variant        Variant
	Limit          values.Value
}

// Duplicate returns a value-semantic copy of c. Since Condition holds
// no pointers to mutable state (values.Value implementations are all
// immutable), a plain copy already satisfies the contract; Duplicate
// exists so call sites can express intent without relying on that fact.
func (c Condition) Duplicate() Condition {
	return c
}

// SatisfiedBy reports whether object i of table satisfies c. Missing
// evaluations fall out of the underlying TriLogic comparison without
// special-casing: an MV1.5 evaluation compares True against anything,
// so it always satisfies; an MV2 evaluation compares Uncomparable
// against anything non-missing, which is never a satisfying True.
func (c Condition) SatisfiedBy(objectIndex int, table *data.InformationTable) bool {
	objectValue := table.GetField(objectIndex, c.AttributeIndex)

	var a, b values.Value
	if c.Variant == ThresholdVsObject {
		a, b = c.Limit, objectValue
	} else {
		a, b = objectValue, c.Limit
	}

	var result values.TriLogic
	switch c.Relation {
	case AtMost:
		result = values.AtMost(a, b)
	case Equal:
		result = values.Equal(a, b)
	default:
		result = values.AtLeast(a, b)
	}
	return result == values.True
}

func (c Condition) String() string {
	if c.Variant == ThresholdVsObject {
		return fmt.Sprintf("attr[%d] %s %v (threshold-vs-object)", c.AttributeIndex, c.Relation, c.Limit)
	}
	return fmt.Sprintf("attr[%d] %s %v (object-vs-threshold)", c.AttributeIndex, c.Relation, c.Limit)
}

// ThresholdVsObjectFor builds the certain-rule condition "attribute
// attrIdx of the object is at least as good as limit", resolving gain
// vs cost vs none into a concrete Relation exactly per SPEC_FULL.md §3
// C6: AT_LEAST+gain -> threshold<=object; AT_LEAST+cost -> threshold>=object;
// AT_LEAST+none -> threshold=object; AT_MOST flips the direction.
func ThresholdVsObjectFor(attrIdx int, pref values.PreferenceType, atLeast bool, limit values.Value) Condition {
	return Condition{
		AttributeIndex: attrIdx,
		Relation:       resolveRelation(pref, atLeast),
		Variant:        ThresholdVsObject,
		Limit:          limit,
	}
}

// ObjectVsThresholdFor builds the possible-rule counterpart of
// ThresholdVsObjectFor, using the same relation but the swapped operand
// order.
func ObjectVsThresholdFor(attrIdx int, pref values.PreferenceType, atLeast bool, limit values.Value) Condition {
	return Condition{
		AttributeIndex: attrIdx,
		Relation:       resolveRelation(pref, atLeast),
		Variant:        ObjectVsThreshold,
		Limit:          limit,
	}
}

func resolveRelation(pref values.PreferenceType, atLeast bool) Relation {
	if pref == values.None {
		return Equal
	}
	gainLike := pref == values.Gain
	if !atLeast {
		gainLike = !gainLike
	}
	if gainLike {
		return AtMost // threshold <= object, i.e. object >= threshold
	}
	return AtLeast // threshold >= object, i.e. object <= threshold
}
