package vecdist

import (
	"errors"
	"fmt"
	"math"

	"github.com/brianmaterne/distances/number"
)

// ErrDimensionMismatch is the panic cause when operand lengths differ.
var ErrDimensionMismatch = errors.New("vecdist: vector dimensions mismatch")

// DistanceFunc is the shape shared by every vector distance in this package,
// convenient for plugging metrics into search or clustering layers.
type DistanceFunc[F number.Float] func(a, b []F) F

// checkDims panics with ErrDimensionMismatch when the lengths differ.
func checkDims[F number.Float](a, b []F) {
	if len(a) != len(b) {
		panic(fmt.Errorf("%w: len(a)=%d, len(b)=%d",
			ErrDimensionMismatch, len(a), len(b)))
	}
}

// SqEuclidean returns the squared Euclidean distance between a and b.
// It skips the sqrt and preserves the ordering of Euclidean, so it can
// stand in wherever only relative distances matter.
// Complexity: O(len(a)).
func SqEuclidean[F number.Float](a, b []F) F {
	checkDims(a, b)

	var sum F
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum
}

// Euclidean returns the L2 distance between a and b.
// Complexity: O(len(a)).
func Euclidean[F number.Float](a, b []F) F {
	return F(math.Sqrt(float64(SqEuclidean(a, b))))
}

// Manhattan returns the L1 distance between a and b: the sum of absolute
// coordinate deltas.
// Complexity: O(len(a)).
func Manhattan[F number.Float](a, b []F) F {
	checkDims(a, b)

	var sum F
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}

	return sum
}

// Cosine returns the cosine distance 1 - cos(a, b), computing the dot
// product and both norms in a single pass. When either operand has zero
// norm the angle is undefined and the distance is 1.
// Complexity: O(len(a)).
func Cosine[F number.Float](a, b []F) F {
	checkDims(a, b)

	var dot, normA, normB F
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 1
	}

	sim := float64(dot) / (math.Sqrt(float64(normA)) * math.Sqrt(float64(normB)))

	return F(1 - sim)
}
