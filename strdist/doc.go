// Package strdist computes exact distances between strings: Levenshtein
// edit distance and Hamming distance, generic over the unsigned result type.
//
// What
//
//   - EditDistance[U](a, b): minimum number of single-character insertions,
//     deletions, and substitutions transforming a into b, computed with the
//     Wagner–Fischer dynamic program over a single rolling row.
//   - HammingDistance[U](x, y): number of positions whose characters differ,
//     compared up to the length of the shorter input; the excess of the
//     longer input is not compared.
//   - Both operate on Unicode code points (runes), never on raw bytes, and
//     both narrow their count into the caller-chosen unsigned type U via
//     number.MustFromCount.
//
// Why
//
//   - Rank spelling-correction candidates and detect near-duplicates.
//   - Compare fixed-layout records or genetic sequences position by position.
//   - Feed exact distances into clustering and nearest-neighbor layers.
//
// Unicode
//
//	Inputs are decoded with []rune, so a multi-byte character counts as a
//	single unit. Comparison is exact and case-sensitive: no normalization,
//	case folding, or locale handling is applied. Callers who need those
//	must pre-process their inputs.
//
// Result width
//
//	The result type U is chosen by the caller per call site:
//
//	  d8 := strdist.EditDistance[uint8]("kitten", "sitting")
//	  d64 := strdist.EditDistance[uint64](a, b)
//
//	A distance that does not fit in U is a contract violation by the caller
//	(the width was chosen too narrow for the inputs), so the conversion
//	panics rather than truncating; see Panics below.
//
// Complexity (n = len(a), m = len(b), in runes)
//
//   - EditDistance:    O(n·m) time, O(min(n, m)) memory.
//   - HammingDistance: O(min(n, m)) time beyond the O(n+m) decode.
//
// Panics
//
//	Both functions panic with an error wrapping number.ErrOverflow when the
//	true distance exceeds the maximum of U. There are no other failure
//	modes: every pair of strings, including empty and unequal-length pairs,
//	has a defined distance.
package strdist
