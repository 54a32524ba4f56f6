package strdist

import "github.com/brianmaterne/distances/number"

// HammingDistance — positional mismatch count
//
// Description:
//
//	Counts the positions at which the runes of x and y differ. Only the
//	first min(len(x), len(y)) positions are compared: when the inputs have
//	unequal length the excess of the longer one is ignored, never counted
//	and never an error. Length handling is therefore the caller's concern
//	when strict equal-length semantics are required.
//
// Algorithm Outline:
//  1. Decode x and y into rune slices.
//  2. Walk both up to the shorter length, counting unequal positions.
//  3. Narrow the count into U via number.MustFromCount.
//
// Complexity:
//
//	Time   = O(min(len(x), len(y))) after the O(len(x)+len(y)) decode
//	Memory = O(len(x)+len(y)) for the decoded runes

// HammingDistance returns the number of positions at which x and y hold
// different runes, compared up to the shorter length, as the unsigned
// type U.
//
// It panics with an error wrapping number.ErrOverflow when the count does
// not fit in U.
//
//	d := strdist.HammingDistance[uint16]("karolin", "kathrin") // 3
func HammingDistance[U number.Unsigned](x, y string) U {
	rx := []rune(x)
	ry := []rune(y)

	n := min(len(rx), len(ry))
	count := 0
	for i := 0; i < n; i++ {
		if rx[i] != ry[i] {
			count++
		}
	}

	return number.MustFromCount[U](count)
}
