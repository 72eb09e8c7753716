package data

import "github.com/fgrzeskowiak/rulelearn/internal/values"

// Kind distinguishes the role an attribute plays in an information
// table.
type Kind int

const (
	// KindCondition attributes describe objects and feed dominance tests.
	KindCondition Kind = iota
	// KindDecision attributes carry the ordinal class an object belongs to.
	KindDecision
	// KindDescription attributes are auxiliary, non-evaluative metadata.
	KindDescription
	// KindIdentification attributes hold stable, usually nominal, object ids.
	KindIdentification
)

func (k Kind) String() string {
	switch k {
	case KindDecision:
		return "DECISION"
	case KindDescription:
		return "DESCRIPTION"
	case KindIdentification:
		return "IDENTIFICATION"
	default:
		return "CONDITION"
	}
}

// ValueKind identifies which values.Value subtype an attribute's column
// holds.
type ValueKind int

const (
	// KindInt columns hold values.IntValue.
	KindInt ValueKind = iota
	// KindReal columns hold values.RealValue.
	KindReal
	// KindEnum columns hold values.EnumValue.
	KindEnum
	// KindPair columns hold values.PairValue.
	KindPair
)

// Attribute is named, typed column metadata for one position in an
// InformationTable.
type Attribute struct {
	Name          string
	Active        bool
	Kind          Kind
	Preference    values.PreferenceType
	ValueKind     ValueKind
	PairInner     ValueKind // meaningful only when ValueKind == KindPair
	Elements      *values.ElementList // meaningful only when ValueKind == KindEnum (or KindPair with PairInner == KindEnum)
	MissingFlavor values.MissingFlavor
}

// IsEvaluation reports whether this attribute is an evaluation
// attribute (condition, decision, or description) as opposed to an
// identification attribute.
func (a Attribute) IsEvaluation() bool {
	return a.Kind != KindIdentification
}

// IsOrdinal reports whether comparisons on this attribute's values carry
// an order, i.e. it is a criterion (gain or cost), not a plain nominal
// attribute.
func (a Attribute) IsOrdinal() bool {
	return a.Preference == values.Gain || a.Preference == values.Cost
}
