package setdist

import "github.com/brianmaterne/distances/number"

// overlap reports the intersection and union cardinalities of x and y as
// sets, collapsing duplicate members.
//
// Stage 1 (Index):  record the distinct members of x.
// Stage 2 (Sweep):  walk the distinct members of y, classifying each as
//
//	shared (intersection) or new (union only).
//
// Complexity: O(len(x)+len(y)) time and memory.
func overlap[T number.Integer](x, y []T) (inter, union int) {
	seen := make(map[T]struct{}, len(x))
	for _, v := range x {
		seen[v] = struct{}{}
	}
	union = len(seen)

	counted := make(map[T]struct{}, len(y))
	for _, v := range y {
		if _, dup := counted[v]; dup {
			continue
		}
		counted[v] = struct{}{}

		if _, ok := seen[v]; ok {
			inter++
		} else {
			union++
		}
	}

	return inter, union
}

// Jaccard returns the Jaccard distance between the sets x and y:
//
//	J(x, y) = 1 - |x∩y| / |x∪y|
//
// An empty union (both inputs empty) yields 0.
// Complexity: O(len(x)+len(y)).
func Jaccard[T number.Integer](x, y []T) float64 {
	inter, union := overlap(x, y)
	if union == 0 {
		return 0
	}

	return 1 - float64(inter)/float64(union)
}

// Kulsinski returns the Kulsinski dissimilarity between the sets x and y:
//
//	K(x, y) = 1 - |x∩y| / (2|x∪y| - |x∩y|)
//
// It discounts agreement more heavily than Jaccard, so for partially
// overlapping sets K >= J. An empty union yields 0.
// Complexity: O(len(x)+len(y)).
func Kulsinski[T number.Integer](x, y []T) float64 {
	inter, union := overlap(x, y)
	if union == 0 {
		return 0
	}

	return 1 - float64(inter)/float64(union+union-inter)
}

// Dice returns the Sørensen–Dice distance between the sets x and y:
//
//	D(x, y) = 1 - 2|x∩y| / (|x∪y| + |x∩y|)
//
// The denominator equals |x|+|y| counted over distinct members, so this is
// the classic (ntf+nft)/(2ntt+ntf+nft) form. An empty union yields 0.
// Complexity: O(len(x)+len(y)).
func Dice[T number.Integer](x, y []T) float64 {
	inter, union := overlap(x, y)
	if union == 0 {
		return 0
	}

	return 1 - 2*float64(inter)/float64(union+inter)
}
