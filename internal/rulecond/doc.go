// Package rulecond models elementary conditions: a single comparison
// between one attribute's evaluation on an object and a limiting value,
// used as the building block of a rule's left-hand side
// (SPEC_FULL.md §3 C6). Conditions are value-semantic and immutable;
// internal/ruleconditions owns the mutable bookkeeping around a list of
// them.
package rulecond
