// Package ruleconditions holds the mutable, incrementally-maintained
// state of one rule's left-hand side while the induction loop is still
// adding and removing elementary conditions (SPEC_FULL.md §3 C7). A
// RuleConditions becomes frozen, conceptually, the moment it is
// converted into a rules.Rule; nothing in this package enforces that
// freeze, since ownership of that transition belongs to the induction
// loop.
package ruleconditions
