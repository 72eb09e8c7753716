package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRuleSetDedupesByID(t *testing.T) {
	a := Rule{ID: "r1"}
	b := Rule{ID: "r1"}
	c := Rule{ID: "r2"}

	set := NewRuleSet(a, b, c)
	assert.Equal(t, 2, set.Len())
}

func TestJoinKeepsFirstSetsCopyOnIDCollision(t *testing.T) {
	a := NewRuleSet(Rule{ID: "r1", Type: Certain})
	b := NewRuleSet(Rule{ID: "r1", Type: Possible}, Rule{ID: "r2", Type: Certain})

	joined := Join(a, b)
	require := assert.New(t)
	require.Equal(2, joined.Len())

	for _, r := range joined.Rules() {
		if r.ID == "r1" {
			require.Equal(Certain, r.Type, "Join should keep the first set's copy of a colliding id")
		}
	}
}
