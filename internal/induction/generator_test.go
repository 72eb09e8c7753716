package induction

import (
	"testing"

	"github.com/fgrzeskowiak/rulelearn/internal/approx"
	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/rulecond"
	"github.com/fgrzeskowiak/rulelearn/internal/ruleconditions"
	"github.com/fgrzeskowiak/rulelearn/internal/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separableTable has objects {0,1,2} as positives with high "a" values
// and {3,4} as the objects a certain rule must exclude, with low "a"
// values - a single AtLeast threshold on "a" separates them cleanly.
func separableTable(t *testing.T) *data.InformationTable {
	t.Helper()
	attrs := []data.Attribute{
		{Name: "a", Active: true, Kind: data.KindCondition, Preference: values.Gain, ValueKind: data.KindInt},
	}
	rows := [][]values.Value{
		{values.IntValue(10)},
		{values.IntValue(11)},
		{values.IntValue(12)},
		{values.IntValue(1)},
		{values.IntValue(2)},
	}
	table, err := data.NewInformationTable(attrs, rows)
	require.NoError(t, err)
	return table
}

func TestM4OptimizedGeneratorRejectsEmptyEvaluatorList(t *testing.T) {
	_, err := NewM4OptimizedGenerator(nil, approx.AtLeast, Certain)
	require.Error(t, err)
}

func TestGetBestConditionSeparatesPositivesFromNegatives(t *testing.T) {
	table := separableTable(t)
	rc := ruleconditions.New(table, []int{0, 1, 2}, []int{0, 1, 2}, []int{0, 1, 2}, nil)

	gen, err := NewM4OptimizedGenerator(
		[]ConditionEvaluator{NegativeCoverageEvaluator{}, PositiveCoverageEvaluator{}},
		approx.AtLeast,
		Certain,
	)
	require.NoError(t, err)

	cond, err := gen.GetBestCondition(table, rc.BaseObjects(), rc)
	require.NoError(t, err)

	for _, i := range []int{0, 1, 2} {
		assert.True(t, cond.SatisfiedBy(i, table), "best condition must keep covering positive %d", i)
	}
	for _, i := range []int{3, 4} {
		assert.False(t, cond.SatisfiedBy(i, table), "best condition should exclude negative %d", i)
	}
}

func TestGetBestConditionErrorsWhenNoAttributeIsUsable(t *testing.T) {
	table := separableTable(t)
	rc := ruleconditions.New(table, []int{0, 1, 2}, []int{0, 1, 2}, []int{0, 1, 2, 3, 4}, nil)
	rc.AddCondition(rulecond.ThresholdVsObjectFor(0, values.Gain, true, values.IntValue(5)))

	gen, err := NewM4OptimizedGenerator(
		[]ConditionEvaluator{PositiveCoverageEvaluator{}},
		approx.AtLeast,
		Certain,
	)
	require.NoError(t, err)

	_, err = gen.GetBestCondition(table, rc.BaseObjects(), rc)
	require.Error(t, err, "the only condition attribute is already used")
}
