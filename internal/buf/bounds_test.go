package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	sum, ok := AddOverflowSafe(10, 5)
	require.True(t, ok)
	require.Equal(t, 15, sum)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	require.False(t, ok, "adding to MaxInt must overflow")
	_, ok = AddOverflowSafe(math.MinInt, -1)
	require.False(t, ok, "subtracting from MinInt must underflow")
}

func TestMulOverflowSafe(t *testing.T) {
	p, ok := MulOverflowSafe(6, 7)
	require.True(t, ok)
	require.Equal(t, 42, p)

	p, ok = MulOverflowSafe(0, math.MaxInt)
	require.True(t, ok)
	require.Zero(t, p)

	_, ok = MulOverflowSafe(math.MaxInt/2, 3)
	require.False(t, ok)
	_, ok = MulOverflowSafe(-1, 3)
	require.False(t, ok)
}

func TestCheckTable(t *testing.T) {
	end, err := CheckTable(36, 4, 4, 8)
	require.NoError(t, err)
	require.Equal(t, 36, end)

	_, err = CheckTable(35, 4, 4, 8)
	require.ErrorContains(t, err, "bounds")

	_, err = CheckTable(100, -1, 1, 8)
	require.ErrorContains(t, err, "negative offset")

	_, err = CheckTable(100, 0, -2, 8)
	require.ErrorContains(t, err, "negative count")

	_, err = CheckTable(100, 4, math.MaxInt/4, 8)
	require.ErrorContains(t, err, "overflow")
}

func TestSpan(t *testing.T) {
	require.True(t, Span(5, 1, 3))
	require.False(t, Span(5, 4, 2), "past the end")
	require.False(t, Span(5, -1, 1), "negative offset")
	require.False(t, Span(5, 1, -1), "negative length")
	require.False(t, Span(5, 1, math.MaxInt), "overflow")

	require.True(t, Span(5, 5, 0), "empty span at the end is in bounds")
	require.False(t, Span(5, 2, 4))
}
