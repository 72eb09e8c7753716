package rules

import "github.com/fgrzeskowiak/rulelearn/internal/data"

// CoverageInformation holds the four standard rule-coverage statistics,
// computed against a table a rule was (or could have been) induced
// from: how many objects it covers and recommends correctly (support),
// support as a fraction of the whole table (strength), support as a
// fraction of covered objects (confidence), and support as a fraction
// of the decision class it targets (coverage).
type CoverageInformation struct {
	Support    int
	Strength   float64
	Confidence float64
	Coverage   float64
}

// Coverage computes r's CoverageInformation against table, where
// unionSize is the size of the decision class (or union) r's head
// targets.
func Coverage(r Rule, table *data.InformationTable, unionSize int) CoverageInformation {
	n := table.NumObjects()
	covered := 0
	support := 0
	for i := 0; i < n; i++ {
		if !r.Covers(i, table) {
			continue
		}
		covered++
		if dec, ok := table.GetDecision(i); ok && r.Recommends(dec) {
			support++
		}
	}
	return CoverageInformation{
		Support:    support,
		Strength:   ratio(support, n),
		Confidence: ratio(support, covered),
		Coverage:   ratio(support, unionSize),
	}
}

func ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}
