package ioformat

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/rulecond"
	"github.com/fgrzeskowiak/rulelearn/internal/rules"
	"github.com/fgrzeskowiak/rulelearn/internal/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRuleMLRoundTripsThroughXML(t *testing.T) {
	limiting := data.SimpleDecision{AttributeIndex: 1, Value: values.IntValue(2), Preference: values.Gain}
	rs := rules.NewRuleSet(rules.Rule{
		ID:        "rule-1",
		Type:      rules.Certain,
		Semantics: rules.AtLeast,
		Limiting:  limiting,
		Conditions: []rulecond.Condition{
			rulecond.ThresholdVsObjectFor(0, values.Gain, true, values.IntValue(10)),
		},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteRuleML(&buf, rs))

	var decoded ruleMLSet
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Rules, 1)
	row := decoded.Rules[0]
	assert.Equal(t, "rule-1", row.ID)
	assert.Equal(t, "certain", row.Type)
	assert.Equal(t, ">=", row.Semantics)
	require.Len(t, row.Conditions, 1)
	assert.Equal(t, 0, row.Conditions[0].Attribute)
	assert.Equal(t, "<=", row.Conditions[0].Relation)
	assert.Equal(t, "10", row.Conditions[0].Limit)
	assert.Equal(t, "2", row.Decision.Value)
	assert.Equal(t, []int{1}, row.Decision.Attributes)
}

func TestWriteRuleMLHandlesEmptyRuleSet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRuleML(&buf, rules.NewRuleSet()))
	assert.Contains(t, buf.String(), "<RuleSet")
}
