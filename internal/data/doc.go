// Package data implements the information-table layer: attribute
// metadata, decisions, and the immutable, column-partitioned object x
// attribute matrix that every other algorithmic package reads from.
//
// Construction validates the table once; after that, InformationTable
// and everything it hands out (Decision, field values) is read-only.
// Row projection (Select) shares the underlying field storage with its
// parent table, the way a dominance cone or an approximated set shares
// the information table it was built over.
package data
