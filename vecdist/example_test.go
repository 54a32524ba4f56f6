package vecdist_test

import (
	"fmt"

	"github.com/brianmaterne/distances/vecdist"
)

// ExampleEuclidean shows the 3-4-5 right triangle.
func ExampleEuclidean() {
	a := []float64{0, 0}
	b := []float64{3, 4}
	fmt.Println(vecdist.Euclidean(a, b))
	// Output:
	// 5
}

// ExampleSqEuclidean shows the sqrt-free fast path used for ranking.
func ExampleSqEuclidean() {
	a := []float64{0, 0}
	b := []float64{3, 4}
	fmt.Println(vecdist.SqEuclidean(a, b))
	// Output:
	// 25
}

// ExampleManhattan shows the L1 grid distance for the same pair.
func ExampleManhattan() {
	a := []float64{0, 0}
	b := []float64{3, 4}
	fmt.Println(vecdist.Manhattan(a, b))
	// Output:
	// 7
}

// ExampleCosine shows parallel vectors at distance 0 and orthogonal
// vectors at distance 1.
func ExampleCosine() {
	fmt.Println(vecdist.Cosine([]float64{1, 2, 3}, []float64{2, 4, 6}))
	fmt.Println(vecdist.Cosine([]float64{1, 0}, []float64{0, 1}))
	// Output:
	// 0
	// 1
}
