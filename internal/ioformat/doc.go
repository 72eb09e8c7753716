// Package ioformat is the thin boundary layer between on-disk formats
// and the library's core types: JSON attribute declarations, CSV/JSON
// object tables, and RuleML rule-set output (SPEC_FULL.md §3, External
// interfaces).
package ioformat
