package data

import (
	"sync/atomic"

	"github.com/fgrzeskowiak/rulelearn/internal/values"
)

// idCounter is the process-wide monotonic id generator described in
// SPEC_FULL.md §5. It is the only global mutable state in this module
// and is only ever touched through atomic operations, so it is safe to
// share across goroutines building tables concurrently.
var idCounter uint64

func nextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}

// InformationTable is an immutable, rectangular object x attribute
// matrix. It partitions its columns into active-condition,
// active-decision, active-identification, and other, and assigns every
// row a globally unique, monotonically increasing id so that row
// projections (Select) retain object identity.
type InformationTable struct {
	attributes []Attribute
	rows       [][]values.Value // rows[objectIndex][attributeIndex]
	ids        []uint64

	activeConditionIdx      []int
	activeDecisionIdx       int // -1 if none
	activeIdentificationIdx int // -1 if none
}

// NewInformationTable validates attrs and rows and builds a table. Rows
// must each have exactly len(attrs) fields. At most one attribute may be
// an active decision attribute, and at most one an active
// identification attribute.
func NewInformationTable(attrs []Attribute, rows [][]values.Value) (*InformationTable, error) {
	if len(attrs) == 0 {
		return nil, invalidInput(ErrNoAttributes, "information table requires at least one attribute")
	}

	decisionIdx := -1
	identificationIdx := -1
	var conditionIdx []int

	for i, a := range attrs {
		switch {
		case a.Active && a.Kind == KindDecision:
			if decisionIdx != -1 {
				return nil, invalidInput(ErrMultipleActiveDecisions,
					"attributes %d and %d are both active decision attributes", decisionIdx, i)
			}
			decisionIdx = i
		case a.Kind == KindIdentification && a.Active:
			if identificationIdx != -1 {
				return nil, invalidInput(ErrMultipleActiveIdentifications,
					"attributes %d and %d are both active identification attributes", identificationIdx, i)
			}
			identificationIdx = i
		case a.Active && a.Kind == KindCondition:
			conditionIdx = append(conditionIdx, i)
		}
	}

	for r, row := range rows {
		if len(row) != len(attrs) {
			return nil, invalidInput(ErrRowWidthMismatch,
				"row %d has %d fields, expected %d", r, len(row), len(attrs))
		}
	}

	ids := make([]uint64, len(rows))
	for i := range rows {
		ids[i] = nextID()
	}

	return &InformationTable{
		attributes:              attrs,
		rows:                    rows,
		ids:                     ids,
		activeConditionIdx:      conditionIdx,
		activeDecisionIdx:       decisionIdx,
		activeIdentificationIdx: identificationIdx,
	}, nil
}

// NumObjects returns the number of rows in the table.
func (t *InformationTable) NumObjects() int { return len(t.rows) }

// NumAttributes returns the number of attributes (columns) in the table.
func (t *InformationTable) NumAttributes() int { return len(t.attributes) }

// Attribute returns the metadata for the attribute at the given index.
func (t *InformationTable) Attribute(attrIndex int) Attribute {
	if attrIndex < 0 || attrIndex >= len(t.attributes) {
		panic(&OutOfRangeError{Kind: "attribute", Index: attrIndex, Size: len(t.attributes)})
	}
	return t.attributes[attrIndex]
}

// Attributes returns the full attribute list, in column order.
func (t *InformationTable) Attributes() []Attribute {
	return t.attributes
}

// ActiveConditionAttributeIndices returns the indices of active
// condition attributes, in column order.
func (t *InformationTable) ActiveConditionAttributeIndices() []int {
	return t.activeConditionIdx
}

// ActiveDecisionAttributeIndex returns the index of the active decision
// attribute, or -1 if the table has none.
func (t *InformationTable) ActiveDecisionAttributeIndex() int {
	return t.activeDecisionIdx
}

// ActiveIdentificationAttributeIndex returns the index of the active
// identification attribute, or -1 if the table has none.
func (t *InformationTable) ActiveIdentificationAttributeIndex() int {
	return t.activeIdentificationIdx
}

// GetField returns the value of object obj on attribute attr.
func (t *InformationTable) GetField(obj, attr int) values.Value {
	if obj < 0 || obj >= len(t.rows) {
		panic(&OutOfRangeError{Kind: "object", Index: obj, Size: len(t.rows)})
	}
	if attr < 0 || attr >= len(t.attributes) {
		panic(&OutOfRangeError{Kind: "attribute", Index: attr, Size: len(t.attributes)})
	}
	return t.rows[obj][attr]
}

// ID returns the globally unique, stable id assigned to object obj at
// construction (or inherited through Select projections).
func (t *InformationTable) ID(obj int) uint64 {
	if obj < 0 || obj >= len(t.ids) {
		panic(&OutOfRangeError{Kind: "object", Index: obj, Size: len(t.ids)})
	}
	return t.ids[obj]
}

// GetDecision returns the Decision for object obj. The second return
// value is false - not an error - if the table has no active decision
// attribute, per the "absent-value sentinel" contract of SPEC_FULL.md
// §7.
func (t *InformationTable) GetDecision(obj int) (Decision, bool) {
	if t.activeDecisionIdx == -1 {
		return nil, false
	}
	attr := t.attributes[t.activeDecisionIdx]
	return SimpleDecision{
		AttributeIndex: t.activeDecisionIdx,
		Value:          t.GetField(obj, t.activeDecisionIdx),
		Preference:     attr.Preference,
	}, true
}

// Select projects this table onto the given object indices, which may
// repeat, returning a new table that shares its underlying field
// storage by reference with the parent and preserves object identity
// (ids) at each selected position.
func (t *InformationTable) Select(indices []int) *InformationTable {
	rows := make([][]values.Value, len(indices))
	ids := make([]uint64, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(t.rows) {
			panic(&OutOfRangeError{Kind: "object", Index: idx, Size: len(t.rows)})
		}
		rows[i] = t.rows[idx] // shared by reference
		ids[i] = t.ids[idx]
	}

	return &InformationTable{
		attributes:              t.attributes,
		rows:                    rows,
		ids:                     ids,
		activeConditionIdx:      t.activeConditionIdx,
		activeDecisionIdx:       t.activeDecisionIdx,
		activeIdentificationIdx: t.activeIdentificationIdx,
	}
}
