package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtLeastOnIntegers(t *testing.T) {
	assert.Equal(t, True, AtLeast(IntValue(5), IntValue(3)))
	assert.Equal(t, False, AtLeast(IntValue(3), IntValue(5)))
	assert.Equal(t, True, AtLeast(IntValue(4), IntValue(4)))
}

func TestAtLeastCrossSubtypeIsUncomparable(t *testing.T) {
	assert.Equal(t, Uncomparable, AtLeast(IntValue(1), RealValue(1)))
}

func TestEnumRequiresSameElementList(t *testing.T) {
	a := NewElementList([]string{"low", "medium", "high"})
	b := NewElementList([]string{"low", "medium", "high"})

	x := EnumValue{Elements: a, Index: 2}
	y := EnumValue{Elements: a, Index: 0}
	z := EnumValue{Elements: b, Index: 0}

	assert.Equal(t, True, AtLeast(x, y), "high >= low, same list")
	assert.Equal(t, Uncomparable, AtLeast(x, z), "different element lists")
}

func TestMV15IsNeutralExceptAgainstPair(t *testing.T) {
	mv15 := NewMissing(MV15)
	assert.Equal(t, True, AtLeast(mv15, IntValue(100)))
	assert.Equal(t, True, AtMost(mv15, IntValue(100)))
	assert.Equal(t, True, AtLeast(IntValue(-5), mv15))

	pair := PairValue{First: IntValue(1), Second: IntValue(2)}
	assert.Equal(t, Uncomparable, AtLeast(mv15, pair))
}

func TestMV2IsConservative(t *testing.T) {
	mv2 := NewMissing(MV2)
	assert.Equal(t, Uncomparable, AtLeast(mv2, IntValue(1)))
	assert.Equal(t, Uncomparable, AtLeast(IntValue(1), mv2))

	otherMV2 := NewMissing(MV2)
	assert.Equal(t, True, AtLeast(mv2, otherMV2))
}

func TestPairValueSemantics(t *testing.T) {
	// [2,5] atLeast [1,6] iff 2>=1 (first atLeast) AND 5<=6 (second atMost).
	a := PairValue{First: IntValue(2), Second: IntValue(5)}
	b := PairValue{First: IntValue(1), Second: IntValue(6)}
	assert.Equal(t, True, AtLeast(a, b))

	c := PairValue{First: IntValue(3), Second: IntValue(6)}
	assert.Equal(t, False, AtLeast(a, c), "first coordinate fails")
}

func TestEqualAndDifferentPropagateUncomparable(t *testing.T) {
	assert.Equal(t, Uncomparable, Equal(IntValue(1), RealValue(1)))
	assert.Equal(t, Uncomparable, Different(IntValue(1), RealValue(1)))
	assert.Equal(t, True, Equal(IntValue(3), IntValue(3)))
	assert.Equal(t, True, Different(IntValue(3), IntValue(4)))
}

func TestAtLeastAsGoodAsDirection(t *testing.T) {
	assert.Equal(t, True, AtLeastAsGoodAs(IntValue(5), IntValue(3), Gain))
	assert.Equal(t, False, AtLeastAsGoodAs(IntValue(5), IntValue(3), Cost))
	assert.Equal(t, True, AtLeastAsGoodAs(IntValue(5), IntValue(5), None))
	assert.Equal(t, False, AtLeastAsGoodAs(IntValue(5), IntValue(3), None),
		"none: inequality is false, not uncomparable")
}

func TestElementListNormalizesLabels(t *testing.T) {
	el := NewElementList([]string{"école", "b"})
	idx, ok := el.IndexOf("école")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestElementListLabelOutOfRangePanics(t *testing.T) {
	el := NewElementList([]string{"a", "b"})
	assert.Panics(t, func() { el.Label(5) })
}
