package approx

import (
	"testing"

	"github.com/fgrzeskowiak/rulelearn/internal/dominance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionsPartitionTheObjectSet(t *testing.T) {
	table := buildOrdinalTable(t, []int64{1, 2, 3, 2, 1})
	cones := dominance.NewCones(table)
	calc := ClassicalCalculator{}

	atLeast2, err := NewUnion(table, cones, AtLeast, limitingDecision(table, 2), calc)
	require.NoError(t, err)
	atMost1, err := NewUnion(table, cones, AtMost, limitingDecision(table, 1), calc)
	require.NoError(t, err)
	require.NoError(t, atLeast2.SetComplementaryUnion(atMost1))
	require.NoError(t, atMost1.SetComplementaryUnion(atLeast2))

	pos := toSet(atLeast2.PositiveRegion())
	neg := toSet(atLeast2.NegativeRegion())
	for i := range pos {
		assert.False(t, neg[i], "object %d in both positive and negative regions", i)
	}

	boundary := toSet(atLeast2.BoundaryRegion())
	for i := 0; i < table.NumObjects(); i++ {
		assert.True(t, pos[i] || neg[i] || boundary[i], "object %d is in no region", i)
	}
}

func TestPositiveRegionContainsLower(t *testing.T) {
	table := buildOrdinalTable(t, []int64{1, 2, 3})
	cones := dominance.NewCones(table)
	calc := ClassicalCalculator{}

	atLeast2, err := NewUnion(table, cones, AtLeast, limitingDecision(table, 2), calc)
	require.NoError(t, err)

	posSet := toSet(atLeast2.PositiveRegion())
	for _, i := range atLeast2.Lower() {
		assert.True(t, posSet[i])
	}
}
