package number

import "fmt"

// FromCount converts a non-negative count into the unsigned type U.
//
// Stage 1 (Validate): reject negative counts with ErrNegativeCount.
// Stage 2 (Bound):    compare against the maximum of U, computed as ^U(0).
// Stage 3 (Convert):  narrow only when the count fits exactly.
//
// The returned error wraps ErrOverflow or ErrNegativeCount and names the
// offending count, the target type, and its maximum.
//
// Complexity: O(1).
func FromCount[U Unsigned](count int) (U, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	limit := uint64(^U(0))
	if uint64(count) > limit {
		return 0, fmt.Errorf("%w: %d does not fit in %T (max %d)",
			ErrOverflow, count, U(0), limit)
	}

	return U(count), nil
}

// MustFromCount converts count into U, panicking on failure.
//
// It exists for the distance functions, whose signatures return the bare
// distance with no error channel: a result type too narrow for the true
// distance is a contract violation by the caller, not a runtime condition
// to handle. The panic value is the same error FromCount returns, so
// errors.Is(recover().(error), ErrOverflow) holds.
//
// Complexity: O(1).
func MustFromCount[U Unsigned](count int) U {
	u, err := FromCount[U](count)
	if err != nil {
		panic(err)
	}

	return u
}
