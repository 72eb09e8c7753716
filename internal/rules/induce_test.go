package rules

import (
	"testing"

	"github.com/fgrzeskowiak/rulelearn/internal/induction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromInducedRulesMintsOneIDPerRule(t *testing.T) {
	table := twoAttrTable(t)
	rules, err := induction.InduceRules(table)
	require.NoError(t, err)
	require.NotEmpty(t, rules)

	gen := NewFixedGenerator("a", "b", "c", "d", "e", "f", "g", "h")
	set := FromInducedRules(rules, gen)

	assert.Equal(t, len(rules), set.Len())
	seen := map[string]bool{}
	for _, r := range set.Rules() {
		assert.False(t, seen[r.ID], "ids minted by FromInducedRules must be distinct")
		seen[r.ID] = true
	}
}
