package consistency

import (
	"github.com/fgrzeskowiak/rulelearn/internal/approx"
	"github.com/fgrzeskowiak/rulelearn/internal/dominance"
	"github.com/fgrzeskowiak/rulelearn/internal/values"
)

// countingCone selects the cone an evidence-counting measure reads
// from: the positive inverted cone for AtLeast unions, the plain
// negative standard cone for AtMost unions.
func countingCone(u *approx.Union, objectIndex int) *dominance.Distribution {
	cones := u.Cones()
	if u.Type() == approx.AtLeast {
		return cones.PositiveInvertedConeDecisionClassDistribution(objectIndex)
	}
	return cones.NegativeStandardConeDecisionClassDistribution(objectIndex)
}

// negativeCount sums, across a decision class distribution, the counts
// of every decision that falls in u's complement.
func negativeCount(u *approx.Union, dist *dominance.Distribution) int {
	negative := 0
	for _, dec := range dist.Decisions() {
		if u.IsConcordantWithDecision(dec) == values.False {
			negative += dist.Count(dec)
		}
	}
	return negative
}

// Epsilon is the distinguished object consistency measure of SPEC_FULL.md
// §3 C5: the number of members of an object's counting cone whose
// decision falls in the union's complement, divided by the size of that
// complement. Its sense is Cost - smaller is better - and
// it degenerates to 0 when the complement is empty.
type Epsilon struct{}

func (Epsilon) Sense() approx.MeasureSense { return approx.Cost }

func (Epsilon) Calculate(objectIndex int, u *approx.Union) float64 {
	complementSize := u.ComplementarySetSize()
	if complementSize == 0 {
		return 0
	}
	dist := countingCone(u, objectIndex)
	return float64(negativeCount(u, dist)) / float64(complementSize)
}

// EpsilonPrime is a gain-oriented companion measure: the fraction of an
// object's counting cone that is NOT negative evidence. It exists to
// exercise the variable-consistency calculator with more than one
// measure. Sense is Gain - larger is better - and it degenerates to 1
// (fully consistent, by the same "no evidence against it" convention
// Epsilon uses at 0) when the cone itself is empty.
type EpsilonPrime struct{}

func (EpsilonPrime) Sense() approx.MeasureSense { return approx.Gain }

func (EpsilonPrime) Calculate(objectIndex int, u *approx.Union) float64 {
	dist := countingCone(u, objectIndex)
	total := dist.Total()
	if total == 0 {
		return 1
	}
	negative := negativeCount(u, dist)
	return float64(total-negative) / float64(total)
}
