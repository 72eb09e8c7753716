// Package approx builds unions of ordered decision classes and their
// dominance-based rough approximations: the classical DRSA lower/upper
// approximation and boundary, the variable-consistency generalization
// driven by a list of object consistency measures, and the cone-based
// positive/negative/boundary region algebra (SPEC_FULL.md §3 C4).
//
// A Union is built once against an InformationTable and a dominance
// Cones cache, then exposes its approximations and regions through
// lazily-memoized accessors: every aggregate is computed at most once
// and is immutable thereafter, per the "compute-once, read-only" rule
// carried over from the dominance engine.
package approx
