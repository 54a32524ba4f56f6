// Package setdist computes normalized distances between finite sets of
// integers: Jaccard, Kulsinski, and Sørensen–Dice.
//
// What
//
//	Each function takes two member slices, collapses duplicates, and
//	returns a float64 distance in [0, 1] built from the intersection
//	cardinality i and union cardinality u:
//
//	  Jaccard(x, y)   = 1 - i/u
//	  Kulsinski(x, y) = 1 - i/(2u - i)
//	  Dice(x, y)      = 1 - 2i/(u + i)
//
//	Identical sets are at distance 0, disjoint non-empty sets at 1.
//	When both inputs are empty the union is empty and every distance is 0.
//
// Why
//
//   - Compare tag sets, shingled documents, or feature bitmaps.
//   - Feed set similarity into clustering and deduplication pipelines.
//
// Conventions
//
//	Members may be any integer type. Order never matters and repeated
//	members count once, so []int{1, 1, 2} and []int{2, 1} are the same
//	set. There are no error returns and no panics: every pair of inputs,
//	including empty ones, has a defined distance.
//
// Complexity: O(len(x) + len(y)) time and memory per call.
package setdist
