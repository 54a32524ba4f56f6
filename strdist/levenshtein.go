package strdist

import "github.com/brianmaterne/distances/number"

// EditDistance — Levenshtein distance via Wagner–Fischer
//
// Description:
//
//	The Levenshtein distance between two strings is the minimum number of
//	single-rune insertions, deletions, and substitutions needed to turn one
//	into the other. It is symmetric, zero exactly for equal strings, and
//	satisfies the triangle inequality.
//
// Algorithm Outline (single rolling row):
//  1. Decode a and b into rune slices ra, rb.
//  2. If either is empty, the distance is the length of the other
//     (that many insertions).
//  3. Swap so rb is the shorter sequence; the DP row is sized to it.
//  4. Initialize row[j] = j for j = 0..len(rb): the cost of building each
//     prefix of rb from the empty string.
//  5. For each rune ca of ra, carry the previous diagonal in pre, set
//     row[0] = i+1, then for each rune cb of rb keep the minimum of
//     deletion     row[j+1] + 1,
//     insertion    row[j] + 1,
//     substitution pre + 1 (or pre exactly when ca == cb).
//  6. The distance is row[len(rb)].
//  7. Narrow the count into U via number.MustFromCount.
//
// Complexity:
//
//	Time   = O(len(ra)·len(rb))
//	Memory = O(min(len(ra), len(rb)))

// EditDistance returns the minimum number of single-rune insertions,
// deletions, and substitutions transforming a into b, as the unsigned
// type U.
//
// It panics with an error wrapping number.ErrOverflow when the true
// distance does not fit in U.
//
//	d := strdist.EditDistance[uint16]("kitten", "sitting") // 3
func EditDistance[U number.Unsigned](a, b string) U {
	ra := []rune(a)
	rb := []rune(b)

	// Degenerate cases: distance to the empty string is the other length.
	if len(ra) == 0 {
		return number.MustFromCount[U](len(rb))
	}
	if len(rb) == 0 {
		return number.MustFromCount[U](len(ra))
	}

	// Keep the row sized to the shorter sequence.
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	// row[j] holds the distance from the current prefix of ra to rb[:j].
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i, ca := range ra {
		pre := row[0] // diagonal D[i-1][j-1], carried across the row
		row[0] = i + 1
		for j, cb := range rb {
			tmp := row[j+1] // D[i-1][j], becomes the next diagonal
			sub := pre
			if ca != cb {
				sub++
			}
			row[j+1] = min(tmp+1, row[j]+1, sub)
			pre = tmp
		}
	}

	return number.MustFromCount[U](row[len(rb)])
}
