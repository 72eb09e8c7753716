// Package dominance computes, per object, the four dominance cones used
// by the approximation engine and the consistency measures: positive
// and negative standard cones, and their inverted counterparts used for
// variable-consistency evidence counting (SPEC_FULL.md §4.3).
//
// Cones and their decision-class distributions are computed once per
// InformationTable and cached behind a sync.Once-guarded field, matching
// the "lazy caches, one-shot per table" rule carried over from the
// dominance-based rough set literature's usual implementation strategy.
package dominance
