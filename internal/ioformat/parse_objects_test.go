package ioformat

import (
	"strings"
	"testing"

	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAttrs() []data.Attribute {
	return []data.Attribute{
		{Name: "score", Active: true, Kind: data.KindCondition, Preference: values.Gain, ValueKind: data.KindInt, MissingFlavor: values.MV15},
		{Name: "class", Active: true, Kind: data.KindDecision, Preference: values.Gain, ValueKind: data.KindInt},
	}
}

func TestParseObjectsCSVBuildsTable(t *testing.T) {
	csvDoc := "10,2\n11,2\n?,1\n"
	table, err := ParseObjectsCSV(sampleAttrs(), strings.NewReader(csvDoc))
	require.NoError(t, err)
	require.Equal(t, 3, table.NumObjects())

	assert.Equal(t, values.IntValue(10), table.GetField(0, 0))
	assert.Equal(t, values.NewMissing(values.MV15), table.GetField(2, 0))
}

func TestParseObjectsCSVRejectsUnparsableField(t *testing.T) {
	csvDoc := "abc,2\n"
	_, err := ParseObjectsCSV(sampleAttrs(), strings.NewReader(csvDoc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "F003")
}

func TestParseObjectsJSONBuildsTable(t *testing.T) {
	jsonDoc := `[[10, 2], [11, 2], ["?", 1]]`
	table, err := ParseObjectsJSON(sampleAttrs(), strings.NewReader(jsonDoc))
	require.NoError(t, err)
	require.Equal(t, 3, table.NumObjects())

	assert.Equal(t, values.IntValue(10), table.GetField(0, 0))
	assert.Equal(t, values.NewMissing(values.MV15), table.GetField(2, 0))
}

func TestParseObjectsJSONRejectsFieldCountMismatch(t *testing.T) {
	jsonDoc := `[[10]]`
	_, err := ParseObjectsJSON(sampleAttrs(), strings.NewReader(jsonDoc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "F002")
}

func TestParsePairFieldSplitsOnSemicolon(t *testing.T) {
	attrs := []data.Attribute{
		{Name: "range", Active: true, Kind: data.KindCondition, Preference: values.Gain, ValueKind: data.KindPair, PairInner: data.KindInt},
	}
	table, err := ParseObjectsCSV(attrs, strings.NewReader("1;5\n"))
	require.NoError(t, err)

	pv, ok := table.GetField(0, 0).(values.PairValue)
	require.True(t, ok)
	assert.Equal(t, values.IntValue(1), pv.First)
	assert.Equal(t, values.IntValue(5), pv.Second)
}
