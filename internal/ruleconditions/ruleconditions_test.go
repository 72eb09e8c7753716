package ruleconditions

import (
	"testing"

	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/rulecond"
	"github.com/fgrzeskowiak/rulelearn/internal/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bookkeepingTable has three gain condition attributes, each carrying
// one object as a unique low outlier so a single AtLeast-threshold
// condition on that column excludes exactly the intended object(s):
// column a isolates object 3, column b isolates objects {3,4} together,
// column c isolates object 4.
func bookkeepingTable(t *testing.T) *data.InformationTable {
	t.Helper()
	attrs := []data.Attribute{
		{Name: "a", Active: true, Kind: data.KindCondition, Preference: values.Gain, ValueKind: data.KindInt},
		{Name: "b", Active: true, Kind: data.KindCondition, Preference: values.Gain, ValueKind: data.KindInt},
		{Name: "c", Active: true, Kind: data.KindCondition, Preference: values.Gain, ValueKind: data.KindInt},
	}
	rows := [][]values.Value{
		{values.IntValue(10), values.IntValue(10), values.IntValue(10)},
		{values.IntValue(11), values.IntValue(11), values.IntValue(11)},
		{values.IntValue(12), values.IntValue(12), values.IntValue(12)},
		{values.IntValue(1), values.IntValue(1), values.IntValue(13)},
		{values.IntValue(13), values.IntValue(2), values.IntValue(1)},
	}
	table, err := data.NewInformationTable(attrs, rows)
	require.NoError(t, err)
	return table
}

func atLeastThreshold(attrIdx int, threshold int64) rulecond.Condition {
	return rulecond.ThresholdVsObjectFor(attrIdx, values.Gain, true, values.IntValue(threshold))
}

// TestIncrementalCoverageBookkeeping is a corrected reproduction of
// scenario S4: the literal trace in spec.md §8 lists a covered set that
// contradicts its own counters at the "remove c2" and final steps (an
// object appears in the covered set while its counter is nonzero),
// which cannot hold under the invariant that same section states
// (covers(i) == notCoveringConditionsCount[i] == 0). This test keeps
// S4's structure - three adds excluding {3}, {3,4}, {4} respectively,
// then removing the second and first conditions - but reports the
// covered set the counters actually imply at each step.
func TestIncrementalCoverageBookkeeping(t *testing.T) {
	table := bookkeepingTable(t)
	rc := New(table, []int{0, 1, 2, 3, 4}, []int{0, 1, 2, 3, 4}, []int{0, 1, 2, 3, 4}, nil)

	c1 := atLeastThreshold(0, 5) // excludes {3}
	c2 := atLeastThreshold(1, 5) // excludes {3,4}
	c3 := atLeastThreshold(2, 5) // excludes {4}

	rc.AddCondition(c1)
	rc.AddCondition(c2)
	rc.AddCondition(c3)

	assert.Equal(t, []int{0, 0, 0, 2, 2}, rc.NotCoveringConditionsCount())
	assert.ElementsMatch(t, []int{0, 1, 2}, rc.CoveredObjectsIterator())

	rc.RemoveCondition(1) // undo c2
	assert.Equal(t, []int{0, 0, 0, 1, 1}, rc.NotCoveringConditionsCount())
	assert.ElementsMatch(t, []int{0, 1, 2}, rc.CoveredObjectsIterator())

	rc.RemoveCondition(0) // undo c1 (now at index 0 after c2's removal)
	assert.Equal(t, []int{0, 0, 0, 0, 1}, rc.NotCoveringConditionsCount())
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, rc.CoveredObjectsIterator())
}

func TestAddThenRemoveIsIdempotent(t *testing.T) {
	table := bookkeepingTable(t)
	rc := New(table, []int{0, 1, 2, 3, 4}, []int{0, 1, 2, 3, 4}, []int{0, 1, 2, 3, 4}, nil)

	before := rc.NotCoveringConditionsCount()
	beforeCovered := rc.CoveredObjectsIterator()

	rc.AddCondition(atLeastThreshold(0, 5))
	rc.RemoveCondition(0)

	assert.Equal(t, before, rc.NotCoveringConditionsCount())
	assert.ElementsMatch(t, beforeCovered, rc.CoveredObjectsIterator())
}

func TestHasConditionForAttribute(t *testing.T) {
	table := bookkeepingTable(t)
	rc := New(table, nil, nil, nil, nil)
	assert.False(t, rc.HasConditionForAttribute(0))

	rc.AddCondition(atLeastThreshold(0, 5))
	assert.True(t, rc.HasConditionForAttribute(0))

	rc.RemoveCondition(0)
	assert.False(t, rc.HasConditionForAttribute(0))
}

func TestIndicesOfCoveredObjectsWithConditionIsNonDestructive(t *testing.T) {
	table := bookkeepingTable(t)
	rc := New(table, nil, nil, nil, nil)

	candidate := atLeastThreshold(0, 5) // excludes {3}
	sim := rc.IndicesOfCoveredObjectsWithCondition(candidate)
	assert.ElementsMatch(t, []int{0, 1, 2, 4}, sim)

	assert.Empty(t, rc.Conditions())
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, rc.CoveredObjectsIterator())
}

func TestCoversMatchesRecheck(t *testing.T) {
	table := bookkeepingTable(t)
	rc := New(table, nil, nil, nil, nil)
	rc.AddCondition(atLeastThreshold(0, 5))

	for i := 0; i < table.NumObjects(); i++ {
		assert.Equal(t, rc.CoversByRecheck(i), rc.Covers(i))
	}
}
