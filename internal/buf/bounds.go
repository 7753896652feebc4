// Package buf contains overflow-safe bounds checks used when validating
// encoded regions.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false on overflow
// or when either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// CheckTable validates that a table of count entries of entrySize bytes fits
// in a region of regionLen bytes starting at offset. It returns the end offset
// of the table.
//
//	end, err := buf.CheckTable(n, 4, count, 8)
//	if err != nil {
//	    return fmt.Errorf("sequence: %w", err)
//	}
func CheckTable(regionLen, offset, count, entrySize int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	total, ok := MulOverflowSafe(count, entrySize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * entrySize=%d", count, entrySize)
	}
	end, ok := AddOverflowSafe(offset, total)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", offset, total)
	}
	if end > regionLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, regionLen)
	}
	return end, nil
}

// Span reports whether [off, off+n) lies inside a region of regionLen bytes.
func Span(regionLen, off, n int) bool {
	if off < 0 || n < 0 || off > regionLen {
		return false
	}
	end, ok := AddOverflowSafe(off, n)
	return ok && end <= regionLen
}
