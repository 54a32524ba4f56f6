package number

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for checked count conversion.
var (
	// ErrOverflow is returned when a count exceeds the maximum value
	// representable by the requested unsigned type.
	ErrOverflow = errors.New("number: count overflows result type")

	// ErrNegativeCount is returned when a negative count is supplied.
	// Distance counts are never negative, so this always signals a bug
	// in the caller.
	ErrNegativeCount = errors.New("number: count is negative")
)

// Unsigned matches every built-in unsigned integer type
// (uint, uint8, uint16, uint32, uint64, uintptr) and types derived from them.
type Unsigned interface {
	constraints.Unsigned
}

// Integer matches every built-in integer type, signed or unsigned.
type Integer interface {
	constraints.Integer
}

// Float matches the built-in floating-point types (float32, float64).
type Float interface {
	constraints.Float
}
