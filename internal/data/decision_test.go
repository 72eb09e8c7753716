package data

import (
	"testing"

	"github.com/fgrzeskowiak/rulelearn/internal/values"
	"github.com/stretchr/testify/assert"
)

func TestSimpleDecisionDominanceGain(t *testing.T) {
	d3 := SimpleDecision{AttributeIndex: 0, Value: values.IntValue(3), Preference: values.Gain}
	d1 := SimpleDecision{AttributeIndex: 0, Value: values.IntValue(1), Preference: values.Gain}

	assert.Equal(t, values.True, d3.AtLeastAsGoodAs(d1))
	assert.Equal(t, values.False, d1.AtLeastAsGoodAs(d3))
	assert.Equal(t, values.True, d1.AtMostAsGoodAs(d3))
}

func TestSimpleDecisionUncomparableAcrossAttributes(t *testing.T) {
	d1 := SimpleDecision{AttributeIndex: 0, Value: values.IntValue(3), Preference: values.Gain}
	d2 := SimpleDecision{AttributeIndex: 1, Value: values.IntValue(3), Preference: values.Gain}
	assert.Equal(t, values.Uncomparable, d1.AtLeastAsGoodAs(d2))
}

func TestCompositeDecisionFalseDominatesUncomparable(t *testing.T) {
	good := CompositeDecision{Coordinates: []SimpleDecision{
		{AttributeIndex: 0, Value: values.IntValue(5), Preference: values.Gain},
		{AttributeIndex: 1, Value: values.NewMissing(values.MV2), Preference: values.Gain},
	}}
	worse := CompositeDecision{Coordinates: []SimpleDecision{
		{AttributeIndex: 0, Value: values.IntValue(9), Preference: values.Gain},
		{AttributeIndex: 1, Value: values.IntValue(1), Preference: values.Gain},
	}}
	// First coordinate is False (5 < 9); second coordinate is Uncomparable (MV2 vs non-missing).
	// False must win over Uncomparable.
	assert.Equal(t, values.False, good.AtLeastAsGoodAs(worse))
}
