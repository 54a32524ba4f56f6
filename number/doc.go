// Package number provides the numeric foundation shared by every distance
// package in this module: generic type-set constraints for element and
// result types, plus checked conversion of raw counts into a caller-chosen
// unsigned integer width.
//
// What
//
//   - Unsigned / Integer / Float: constraints naming the built-in numeric
//     type sets, re-exported so callers and the distance packages agree on
//     a single vocabulary.
//   - FromCount: converts a non-negative int count into any unsigned type,
//     reporting ErrOverflow when the count does not fit.
//   - MustFromCount: the fatal form used by distance functions whose
//     signatures carry no error return; it panics with the same descriptive
//     error FromCount would have returned.
//
// Why
//
//	Distance counts are naturally machine-width ints, but callers often
//	store results in narrower types (uint8 similarity grids, uint16 edit
//	thresholds). Widening is safe; narrowing silently truncates. Funnelling
//	every narrowing through FromCount makes truncation impossible: a count
//	either fits exactly or the conversion refuses.
//
// Errors
//
//   - ErrOverflow      — the count exceeds the maximum of the target type.
//   - ErrNegativeCount — the count is negative (a caller bug).
//
// Complexity: all operations are O(1).
package number
