// Package number_test exercises checked count conversion across widths.
package number_test

import (
	"math"
	"testing"

	"github.com/brianmaterne/distances/number"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromCount_Fits verifies that counts inside the target range convert
// exactly for several widths.
func TestFromCount_Fits(t *testing.T) {
	u8, err := number.FromCount[uint8](200)
	require.NoError(t, err)
	assert.Equal(t, uint8(200), u8)

	u16, err := number.FromCount[uint16](40_000)
	require.NoError(t, err)
	assert.Equal(t, uint16(40_000), u16)

	u64, err := number.FromCount[uint64](math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxInt), u64)
}

// TestFromCount_MaxBoundary verifies the exact maximum of the target type
// converts and the first value beyond it does not.
func TestFromCount_MaxBoundary(t *testing.T) {
	u8, err := number.FromCount[uint8](math.MaxUint8)
	require.NoError(t, err, "the type maximum itself must fit")
	assert.Equal(t, uint8(math.MaxUint8), u8)

	_, err = number.FromCount[uint8](math.MaxUint8 + 1)
	assert.ErrorIs(t, err, number.ErrOverflow, "max+1 must overflow")
}

// TestFromCount_Overflow verifies the overflow error names the count,
// the target type, and its maximum.
func TestFromCount_Overflow(t *testing.T) {
	_, err := number.FromCount[uint8](300)
	require.ErrorIs(t, err, number.ErrOverflow)
	assert.Contains(t, err.Error(), "300", "error must name the count")
	assert.Contains(t, err.Error(), "uint8", "error must name the target type")
	assert.Contains(t, err.Error(), "255", "error must name the type maximum")
}

// TestFromCount_Negative verifies negative counts are rejected with
// ErrNegativeCount.
func TestFromCount_Negative(t *testing.T) {
	_, err := number.FromCount[uint32](-1)
	assert.ErrorIs(t, err, number.ErrNegativeCount)
}

// TestMustFromCount_ReturnsValue verifies the fatal form behaves exactly
// like FromCount on the happy path.
func TestMustFromCount_ReturnsValue(t *testing.T) {
	assert.Equal(t, uint16(1234), number.MustFromCount[uint16](1234))
	assert.Equal(t, uint8(0), number.MustFromCount[uint8](0))
}

// TestMustFromCount_PanicsOnOverflow verifies the panic value is an error
// matching ErrOverflow via errors.Is.
func TestMustFromCount_PanicsOnOverflow(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "overflow must panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error")
		assert.ErrorIs(t, err, number.ErrOverflow)
	}()

	_ = number.MustFromCount[uint8](300)
}

// TestMustFromCount_PanicsOnNegative verifies the panic value matches
// ErrNegativeCount for negative input.
func TestMustFromCount_PanicsOnNegative(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "negative count must panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error")
		assert.ErrorIs(t, err, number.ErrNegativeCount)
	}()

	_ = number.MustFromCount[uint8](-7)
}
