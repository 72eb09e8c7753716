// Package runconfig loads and validates the YAML run configuration
// cmd/rulelearn's subcommands consume: which attribute/object files to
// read, which induction mode to run, and where to write results
// (SPEC_FULL.md §3, External interfaces).
package runconfig
