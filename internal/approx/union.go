package approx

import (
	"sort"
	"sync"

	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/dominance"
	"github.com/fgrzeskowiak/rulelearn/internal/values"
)

// Type distinguishes an "at least class" union from an "at most class"
// union.
type Type int

const (
	AtLeast Type = iota
	AtMost
)

func (t Type) String() string {
	if t == AtMost {
		return "AT_MOST"
	}
	return "AT_LEAST"
}

// MeasureSense is the direction in which an ObjectConsistencyMeasure's
// values improve.
type MeasureSense int

const (
	// Gain: larger values are better; an object satisfies a threshold
	// when its measure value is >= the threshold.
	Gain MeasureSense = iota
	// Cost: smaller values are better; an object satisfies a threshold
	// when its measure value is <= the threshold.
	Cost
)

// ObjectConsistencyMeasure evaluates how consistent a single object's
// membership in a union is, given the union's dominance cones. Declared
// here, the consumer package, rather than alongside its implementations
// in internal/consistency, so that this package never needs to import
// back into consistency.
type ObjectConsistencyMeasure interface {
	Sense() MeasureSense
	Calculate(objectIndex int, u *Union) float64
}

// RoughSetCalculator computes a Union's lower approximation. Classical
// and variable-consistency calculators both implement it; Upper is
// always derived from Lower by the duality rule, uniformly, regardless
// of which calculator produced Lower.
type RoughSetCalculator interface {
	Lower(u *Union) []int
}

// Union is the set of object indices whose decision is at least
// (or at most) as good as a limiting decision, within one
// InformationTable. It lazily computes and caches its approximations
// and regions.
type Union struct {
	table     *data.InformationTable
	cones     *dominance.Cones
	unionType Type
	limiting  data.Decision
	calc      RoughSetCalculator

	objects []int
	neutral []int

	complement        *Union
	upperMaterialized bool

	lowerOnce sync.Once
	lower     []int

	upperOnce sync.Once
	upper     []int

	boundaryOnce sync.Once
	boundary     []int

	posRegionOnce sync.Once
	posRegion     []int

	negRegionOnce sync.Once
	negRegion     []int

	boundaryRegionOnce sync.Once
	boundaryRegion     []int
}

// NewUnion builds a union of the given type anchored at limiting. At
// least one of limiting's attribute indices must be an active,
// ordinal decision attribute, or construction fails.
func NewUnion(table *data.InformationTable, cones *dominance.Cones, unionType Type, limiting data.Decision, calc RoughSetCalculator) (*Union, error) {
	if err := requireOrdinalContributor(table, limiting); err != nil {
		return nil, err
	}

	u := &Union{
		table:     table,
		cones:     cones,
		unionType: unionType,
		limiting:  limiting,
		calc:      calc,
	}

	for i := 0; i < table.NumObjects(); i++ {
		dec, ok := table.GetDecision(i)
		if !ok {
			u.neutral = append(u.neutral, i)
			continue
		}
		switch u.membership(dec) {
		case values.True:
			u.objects = append(u.objects, i)
		case values.Uncomparable:
			u.neutral = append(u.neutral, i)
		}
	}

	return u, nil
}

func requireOrdinalContributor(table *data.InformationTable, limiting data.Decision) error {
	decisionIdx := table.ActiveDecisionAttributeIndex()
	for _, attrIdx := range limiting.AttributeIndices() {
		if attrIdx == decisionIdx && table.Attribute(attrIdx).IsOrdinal() {
			return nil
		}
	}
	return invalidInput(ErrNoOrdinalContributor,
		"limiting decision has no active ordinal decision attribute contributor")
}

// membership tests a single object's decision against the limiting
// decision under this union's type: True = member, False = in the
// complement, Uncomparable = neutral.
func (u *Union) membership(dec data.Decision) values.TriLogic {
	if u.unionType == AtLeast {
		return dec.AtLeastAsGoodAs(u.limiting)
	}
	return dec.AtMostAsGoodAs(u.limiting)
}

// Type returns whether this is an AtLeast or AtMost union.
func (u *Union) Type() Type { return u.unionType }

// LimitingDecision returns the decision this union is anchored at.
func (u *Union) LimitingDecision() data.Decision { return u.limiting }

// InformationTable returns the table this union was built over.
func (u *Union) InformationTable() *data.InformationTable { return u.table }

// Cones returns the dominance cone cache this union was built with.
func (u *Union) Cones() *dominance.Cones { return u.cones }

// Objects returns the member object indices, in ascending order.
func (u *Union) Objects() []int { return u.objects }

// NeutralObjects returns the indices of objects whose decision is
// uncomparable with the limiting decision.
func (u *Union) NeutralObjects() []int { return u.neutral }

// ComplementarySetSize returns the number of objects in neither this
// union nor its neutral set.
func (u *Union) ComplementarySetSize() int {
	return u.table.NumObjects() - len(u.objects) - len(u.neutral)
}

// IsDecisionNegative reports whether an object's decision places it in
// the complement of this union (neither a member nor neutral).
func (u *Union) IsDecisionNegative(objectIndex int) bool {
	dec, ok := u.table.GetDecision(objectIndex)
	if !ok {
		return false
	}
	return u.membership(dec) == values.False
}

// IsConcordantWithDecision reports how dec relates to this union: True
// if an object with this decision would be a member, Uncomparable if
// it would be neutral, False if it would fall in the complement.
func (u *Union) IsConcordantWithDecision(dec data.Decision) values.TriLogic {
	return u.membership(dec)
}

// SetComplementaryUnion links this union to its complementary union
// (AtMost given an AtLeast, and vice versa). It must be called before
// Upper() is first read; afterward it fails with IllegalStateError.
func (u *Union) SetComplementaryUnion(c *Union) error {
	if u.upperMaterialized {
		return illegalState(ErrComplementAfterUpper,
			"cannot set complementary union after upper approximation has materialized")
	}
	u.complement = c
	return nil
}

// ComplementaryUnion returns the linked complementary union, or nil if
// none has been set.
func (u *Union) ComplementaryUnion() *Union { return u.complement }

// Lower returns the lower approximation, computed once via this
// union's RoughSetCalculator.
func (u *Union) Lower() []int {
	u.lowerOnce.Do(func() {
		lower := u.calc.Lower(u)
		sort.Ints(lower)
		u.lower = lower
	})
	return u.lower
}

// Upper returns the upper approximation, derived as the complement of
// the complementary union's lower approximation. Reading Upper for the
// first time freezes this union's complementary-union link.
func (u *Union) Upper() []int {
	u.upperOnce.Do(func() {
		u.upperMaterialized = true
		compLower := map[int]bool{}
		if u.complement != nil {
			for _, i := range u.complement.Lower() {
				compLower[i] = true
			}
		}
		n := u.table.NumObjects()
		upper := make([]int, 0, n)
		for i := 0; i < n; i++ {
			if !compLower[i] {
				upper = append(upper, i)
			}
		}
		u.upper = upper
	})
	return u.upper
}

// Boundary returns Upper \ Lower.
func (u *Union) Boundary() []int {
	u.boundaryOnce.Do(func() {
		lowerSet := toSet(u.Lower())
		var boundary []int
		for _, i := range u.Upper() {
			if !lowerSet[i] {
				boundary = append(boundary, i)
			}
		}
		u.boundary = boundary
	})
	return u.boundary
}

func toSet(indices []int) map[int]bool {
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		set[i] = true
	}
	return set
}
