// Package rulecache is a SQLite-backed memoization store for induction
// runs: given the same attribute/object inputs, mode, and measure
// configuration, a prior run's serialized rule set is returned instead
// of re-running VC-DomLEM (SPEC_FULL.md §3, External interfaces).
package rulecache
