// Package induction implements the VC-DomLEM sequential covering
// algorithm: a condition generator that picks the best next elementary
// condition for a rule under construction, and the outer loop that
// drives rule emission over an ordered sequence of approximated sets
// (SPEC_FULL.md §3 C8).
package induction
