package strdist_test

import (
	"strings"
	"testing"

	"github.com/brianmaterne/distances/number"
	"github.com/brianmaterne/distances/strdist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHammingDistance_KnownPairs verifies hand-checked mismatch counts on
// equal-length inputs.
func TestHammingDistance_KnownPairs(t *testing.T) {
	cases := []struct {
		name string
		x, y string
		want uint64
	}{
		{"block swap long tail", "NAJIBEATSPEPPERS", "NAJIBPEPPERSEATS", 10},
		{"block swap symmetric", "TOMEATSWHATFOODEATS", "FOODEATSWHATTOMEATS", 13},
		{"classic karolin", "karolin", "kathrin", 3},
		{"single mismatch", "flaw", "flow", 1},
		{"all positions differ", "aaaa", "bbbb", 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, strdist.HammingDistance[uint64](tc.x, tc.y))
		})
	}
}

// TestHammingDistance_Identity verifies equal strings are at distance zero.
func TestHammingDistance_Identity(t *testing.T) {
	assert.Equal(t, uint8(0), strdist.HammingDistance[uint8]("", ""))
	assert.Equal(t, uint8(0), strdist.HammingDistance[uint8]("same", "same"))
	assert.Equal(t, uint8(0), strdist.HammingDistance[uint8]("日本語", "日本語"))
}

// TestHammingDistance_Truncation verifies only the first min(len) positions
// are compared and the excess of the longer input never contributes.
func TestHammingDistance_Truncation(t *testing.T) {
	// Shared prefix, extra tail: zero mismatches.
	assert.Equal(t, uint8(0), strdist.HammingDistance[uint8]("abcd", "abcdefg"))
	assert.Equal(t, uint8(0), strdist.HammingDistance[uint8]("abcdefg", "abcd"))

	// One mismatch inside the compared span, tail still ignored.
	assert.Equal(t, uint8(1), strdist.HammingDistance[uint8]("abcx", "abcyzz"))

	// Either side empty: nothing to compare.
	assert.Equal(t, uint8(0), strdist.HammingDistance[uint8]("", "whatever"))
	assert.Equal(t, uint8(0), strdist.HammingDistance[uint8]("whatever", ""))
}

// TestHammingDistance_Symmetry verifies d(x,y) == d(y,x), including pairs
// of unequal length.
func TestHammingDistance_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"karolin", "kathrin"},
		{"abcd", "abcdefg"},
		{"NAJIBEATSPEPPERS", "NAJIBPEPPERSEATS"},
		{"", "xyz"},
	}

	for _, p := range pairs {
		xy := strdist.HammingDistance[uint32](p[0], p[1])
		yx := strdist.HammingDistance[uint32](p[1], p[0])
		assert.Equal(t, xy, yx, "HammingDistance(%q,%q) must be symmetric", p[0], p[1])
	}
}

// TestHammingDistance_MultiByteRunes verifies positions are counted in
// code points, not bytes.
func TestHammingDistance_MultiByteRunes(t *testing.T) {
	assert.Equal(t, uint8(1), strdist.HammingDistance[uint8]("日本語", "日本誤"))
	assert.Equal(t, uint8(1), strdist.HammingDistance[uint8]("über", "uber"))
}

// TestHammingDistance_CaseSensitive verifies no case folding is applied.
func TestHammingDistance_CaseSensitive(t *testing.T) {
	assert.Equal(t, uint8(3), strdist.HammingDistance[uint8]("ABC", "abc"))
}

// TestHammingDistance_OverflowPanics verifies a too-narrow result type
// panics with an error matching number.ErrOverflow.
func TestHammingDistance_OverflowPanics(t *testing.T) {
	x := strings.Repeat("a", 300)
	y := strings.Repeat("b", 300) // 300 mismatching positions

	defer func() {
		r := recover()
		require.NotNil(t, r, "uint8 result for count 300 must panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error")
		assert.ErrorIs(t, err, number.ErrOverflow)
	}()

	_ = strdist.HammingDistance[uint8](x, y)
}

// TestHammingDistance_BoundsEditDistance verifies the positional mismatch
// count never undercuts Levenshtein on equal-length inputs: every aligned
// mismatch needs at least one edit.
func TestHammingDistance_BoundsEditDistance(t *testing.T) {
	pairs := [][2]string{
		{"NAJIBEATSPEPPERS", "NAJIBPEPPERSEATS"},
		{"TOMEATSWHATFOODEATS", "FOODEATSWHATTOMEATS"},
		{"karolin", "kathrin"},
		{"aaaa", "bbbb"},
	}

	for _, p := range pairs {
		edit := strdist.EditDistance[uint32](p[0], p[1])
		hamming := strdist.HammingDistance[uint32](p[0], p[1])
		assert.LessOrEqual(t, edit, hamming,
			"edit distance must not exceed hamming for equal-length %q vs %q", p[0], p[1])
	}
}
