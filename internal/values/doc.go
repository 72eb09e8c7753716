// Package values provides the scalar value model shared by every other
// package in this module: ordered integers and reals, enumerated
// (nominal or ordinal) elements, pairs of ordered values, and the two
// missing-value flavors used across the dominance-based rough set
// approach.
//
// This package has no internal imports. Every other package imports
// values; values imports nothing internal. This keeps the value model
// the foundational layer, with no circular dependencies.
//
// Key design constraints:
//   - Value is a sealed interface: only the types declared in this
//     package implement it.
//   - Comparisons never panic on mismatched subtypes; they resolve to
//     Uncomparable.
//   - Enumeration labels are compared after Unicode NFC
//     normalization, so visually identical labels encoded
//     with different combining sequences compare equal.
package values
