package setdist_test

import (
	"fmt"

	"github.com/brianmaterne/distances/setdist"
)

// ExampleJaccard shows two sets sharing half their union: i=2, u=4.
func ExampleJaccard() {
	x := []int{1, 2, 3}
	y := []int{2, 3, 4}
	fmt.Printf("%.4f\n", setdist.Jaccard(x, y))
	// Output:
	// 0.5000
}

// ExampleKulsinski shows the heavier agreement discount on the same pair.
func ExampleKulsinski() {
	x := []int{1, 2, 3}
	y := []int{2, 3, 4}
	fmt.Printf("%.4f\n", setdist.Kulsinski(x, y))
	// Output:
	// 0.6667
}

// ExampleDice shows the Sørensen–Dice distance on the same pair.
func ExampleDice() {
	x := []int{1, 2, 3}
	y := []int{2, 3, 4}
	fmt.Printf("%.4f\n", setdist.Dice(x, y))
	// Output:
	// 0.3333
}

// ExampleJaccard_emptySets shows the empty-union convention.
func ExampleJaccard_emptySets() {
	fmt.Println(setdist.Jaccard([]int{}, []int{}))
	// Output:
	// 0
}
