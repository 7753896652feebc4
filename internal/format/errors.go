package format

import "errors"

var (
	// ErrTruncated indicates the region lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated region")
	// ErrBadTag indicates a tag outside the vocabulary, or one not allowed at that position.
	ErrBadTag = errors.New("format: unexpected tag")
	// ErrBadHeader indicates unknown bits in a node tree or element header.
	ErrBadHeader = errors.New("format: bad header flags")
	// ErrBadLayout indicates offsets or lengths that do not describe a consistent region.
	ErrBadLayout = errors.New("format: inconsistent layout")
)
