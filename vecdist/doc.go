// Package vecdist computes distances between equal-length numeric vectors:
// Euclidean (L2), squared Euclidean, Manhattan (L1), and cosine distance.
//
// What
//
//   - Euclidean[F](a, b):   sqrt of the sum of squared coordinate deltas.
//   - SqEuclidean[F](a, b): the same sum without the final sqrt, the usual
//     fast path for nearest-neighbor ranking where order is all that counts.
//   - Manhattan[F](a, b):   sum of absolute coordinate deltas.
//   - Cosine[F](a, b):      1 - cos(a, b); 0 for parallel, 1 for orthogonal,
//     2 for opposite vectors. A zero-norm operand yields 1.
//
// Element type
//
//	All functions are generic over F (float32 or float64) and return F, so
//	embedding-sized float32 data never pays for a float64 round trip.
//
// Dimensions
//
//	Operands must have equal length. A mismatch is a programmer error, not
//	a runtime condition: the functions panic with an error wrapping
//	ErrDimensionMismatch naming both lengths. Empty vectors are permitted
//	and are at Euclidean/Manhattan distance 0 from each other.
//
// Complexity: one O(len) pass per call, no allocations.
package vecdist
