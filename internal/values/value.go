package values

import "fmt"

// Value is the sealed interface implemented by every scalar value kind
// this module understands: IntValue, RealValue, EnumValue, PairValue,
// and MissingValue.
type Value interface {
	isValue()
	fmt.Stringer
}

// PreferenceType is the preference direction declared on a criterion.
type PreferenceType int

const (
	// None marks a non-preference (nominal) attribute: dominance
	// requires equality rather than an ordering.
	None PreferenceType = iota
	// Gain marks a criterion where larger values are preferred.
	Gain
	// Cost marks a criterion where smaller values are preferred.
	Cost
)

func (p PreferenceType) String() string {
	switch p {
	case Gain:
		return "GAIN"
	case Cost:
		return "COST"
	default:
		return "NONE"
	}
}

// MissingFlavor selects one of the two missing-value semantics a
// MissingValue can carry.
type MissingFlavor int

const (
	// MV15 ("1.5") missing values act as a neutral element: they
	// compare TRUE to every non-missing, non-pair value in every
	// ordered relation.
	MV15 MissingFlavor = iota
	// MV2 missing values are conservative: they compare TRUE only to
	// another missing value (of either flavor) and UNCOMPARABLE to any
	// non-missing value in dominance relations.
	MV2
)

func (f MissingFlavor) String() string {
	if f == MV2 {
		return "MV2"
	}
	return "MV1.5"
}

// IntValue is an ordered integer value.
type IntValue int64

func (IntValue) isValue()          {}
func (v IntValue) String() string  { return fmt.Sprintf("%d", int64(v)) }

// RealValue is an ordered real value.
type RealValue float64

func (RealValue) isValue()         {}
func (v RealValue) String() string { return fmt.Sprintf("%g", float64(v)) }

// ElementList is the shared, ordered domain backing an EnumValue. Order
// in the slice defines the natural order of the enumeration: elements
// earlier in the list are "less preferred" than elements later in the
// list. Two EnumValues are only comparable when they reference the same
// ElementList instance.
type ElementList struct {
	elements []string
	index    map[string]int
}

// NewElementList builds an ElementList from a domain declared in order.
// Labels are NFC-normalized so that visually identical but differently
// encoded labels collapse to one element.
func NewElementList(domain []string) *ElementList {
	el := &ElementList{
		elements: make([]string, len(domain)),
		index:    make(map[string]int, len(domain)),
	}
	for i, d := range domain {
		norm := normalizeLabel(d)
		el.elements[i] = norm
		el.index[norm] = i
	}
	return el
}

// IndexOf returns the position of label in the domain, normalizing it
// first, and false if the label is not part of the domain.
func (el *ElementList) IndexOf(label string) (int, bool) {
	i, ok := el.index[normalizeLabel(label)]
	return i, ok
}

// Label returns the domain label at the given index. It panics with an
// *OutOfRangeError if index is not a valid position in the domain -
// this is a programmer error (fatal per SPEC_FULL.md §7 OutOfRange),
// never a value produced by ordinary ingestion.
func (el *ElementList) Label(index int) string {
	if index < 0 || index >= len(el.elements) {
		panic(&OutOfRangeError{Kind: "enumeration element", Index: index, Size: len(el.elements)})
	}
	return el.elements[index]
}

// Len returns the number of elements in the domain.
func (el *ElementList) Len() int { return len(el.elements) }

// EnumValue is an enumerated element referencing a shared ElementList by
// index. The pointer identity of Elements determines whether two
// EnumValues are of the same subtype for comparison purposes.
type EnumValue struct {
	Elements *ElementList
	Index    int
}

func (EnumValue) isValue() {}
func (v EnumValue) String() string {
	if v.Elements == nil {
		return "?"
	}
	return v.Elements.Label(v.Index)
}

// PairValue models an interval: a pair of two ordered values of the
// same subtype, used for criterion+criterion "range" attributes.
type PairValue struct {
	First, Second Value
}

func (PairValue) isValue()      {}
func (v PairValue) String() string { return fmt.Sprintf("[%s, %s]", v.First, v.Second) }

// MissingValue represents an absent evaluation under one of the two
// missing-value semantics.
type MissingValue struct {
	Flavor MissingFlavor
}

func (MissingValue) isValue()       {}
func (v MissingValue) String() string { return "?" }

// NewMissing constructs a MissingValue carrying the given flavor.
func NewMissing(flavor MissingFlavor) MissingValue {
	return MissingValue{Flavor: flavor}
}
