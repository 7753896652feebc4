package xdm

import (
	"fmt"
	"slices"

	"github.com/joshuapare/xdmkit/internal/buf"
	"github.com/joshuapare/xdmkit/internal/format"
)

// MaxDepth bounds node nesting accepted by Validate.
const MaxDepth = 512

// Validate walks the tagged value in b and checks that every length, offset
// and tag is consistent with the encoding. The accessors assume a valid
// region; Validate is the gate for bytes read from outside the process.
func Validate(b []byte) error {
	return validateTagged(b, 0, len(b))
}

// ValidateSequenceLayout checks a tagged sequence's slot table and that every
// entry is at least a tag byte long. Entry payloads are not checked; callers
// inspect each entry's tag and then run Validate on the entries they accept.
func ValidateSequenceLayout(b []byte) error {
	if len(b) < format.TagSize {
		return fmt.Errorf("tagged value at 0: %w", format.ErrTruncated)
	}
	if tag := format.Tag(b[0]); tag != format.TagSequence {
		return fmt.Errorf("tagged value at 0: %s is not a sequence: %w", tag, format.ErrBadTag)
	}
	return validateSequenceExact(b, format.TagSize, len(b)-format.TagSize, func(b []byte, off, n int) error {
		if n < format.TagSize {
			return fmt.Errorf("sequence entry at %d: %w", off, format.ErrTruncated)
		}
		return nil
	})
}

func validateTagged(b []byte, off, n int) error {
	if n < format.TagSize {
		return fmt.Errorf("tagged value at %d: %w", off, format.ErrTruncated)
	}
	tag := format.Tag(b[off])
	p, pn := off+format.TagSize, n-format.TagSize
	if size, ok := tag.FixedSize(); ok {
		if pn != size {
			return fmt.Errorf("%s at %d: payload %d bytes, want %d: %w", tag, off, pn, size, format.ErrBadLayout)
		}
		return nil
	}
	switch {
	case tag.IsStringLike():
		return validateStringExact(b, p, pn)
	case tag == format.TagSequence:
		return validateSequenceExact(b, p, pn, validateTagged)
	case tag == format.TagNodeTree:
		return validateTree(b, p, pn)
	}
	return fmt.Errorf("tagged value at %d: %s: %w", off, tag, format.ErrBadTag)
}

// validateString checks the string payload at off and returns its size.
func validateString(b []byte, off, n int) (int, error) {
	if n < format.StringLenSize {
		return 0, fmt.Errorf("string at %d: %w", off, format.ErrTruncated)
	}
	size := format.StringSize(int(format.ReadU32(b, off)))
	if size < format.StringLenSize || size > n {
		return 0, fmt.Errorf("string at %d: length %d exceeds %d: %w", off, size, n, format.ErrTruncated)
	}
	return size, nil
}

func validateStringExact(b []byte, off, n int) error {
	size, err := validateString(b, off, n)
	if err != nil {
		return err
	}
	if size != n {
		return fmt.Errorf("string at %d: %d trailing bytes: %w", off, n-size, format.ErrBadLayout)
	}
	return nil
}

type entryValidator func(b []byte, off, n int) error

// validateSequence checks a sequence payload inside b[off:off+n] and returns
// the size it occupies. Entries must be stored contiguously in slot order.
func validateSequence(b []byte, off, n int, entry entryValidator) (int, error) {
	if n < format.SeqEmptySize {
		return 0, fmt.Errorf("sequence at %d: %w", off, format.ErrTruncated)
	}
	count := int(format.ReadU32(b, off+format.SeqCountOffset))
	hdr, err := buf.CheckTable(n, format.SeqTableOffset, count, format.SeqSlotSize)
	if err != nil {
		return 0, fmt.Errorf("sequence at %d: %v: %w", off, err, format.ErrTruncated)
	}
	next := hdr
	for i := 0; i < count; i++ {
		slot := off + format.SeqTableOffset + i*format.SeqSlotSize
		eo := int(format.ReadU32(b, slot))
		el := int(format.ReadU32(b, slot+format.SeqSlotLenOff))
		if eo != next {
			return 0, fmt.Errorf("sequence at %d: entry %d at %d, want %d: %w", off, i, eo, next, format.ErrBadLayout)
		}
		if !buf.Span(n, eo, el) {
			return 0, fmt.Errorf("sequence at %d: entry %d: %w", off, i, format.ErrTruncated)
		}
		if err := entry(b, off+eo, el); err != nil {
			return 0, fmt.Errorf("sequence entry %d: %w", i, err)
		}
		next = eo + el
	}
	return next, nil
}

func validateSequenceExact(b []byte, off, n int, entry entryValidator) error {
	size, err := validateSequence(b, off, n, entry)
	if err != nil {
		return err
	}
	if size != n {
		return fmt.Errorf("sequence at %d: %d trailing bytes: %w", off, n-size, format.ErrBadLayout)
	}
	return nil
}

func validateDictionaryEntry(b []byte, off, n int) error {
	if n < format.TagSize || format.Tag(b[off]) != format.TagString {
		return fmt.Errorf("dictionary entry at %d: %w", off, format.ErrBadTag)
	}
	return validateStringExact(b, off+format.TagSize, n-format.TagSize)
}

func validateTree(b []byte, off, n int) error {
	if n < format.TreeHeaderSize {
		return fmt.Errorf("node tree at %d: %w", off, format.ErrTruncated)
	}
	header := b[off+format.TreeHeaderOffset]
	if header&^(format.TreeNodeIDExists|format.TreeDictionaryExists) != 0 {
		return fmt.Errorf("node tree at %d: header 0x%02x: %w", off, header, format.ErrBadHeader)
	}
	pos, end := off+format.TreeHeaderSize, off+n
	if header&format.TreeDictionaryExists != 0 {
		size, err := validateSequence(b, pos, end-pos, validateDictionaryEntry)
		if err != nil {
			return fmt.Errorf("dictionary: %w", err)
		}
		pos += size
	}
	v := nodeValidator{idExists: header&format.TreeNodeIDExists != 0}
	return v.node(b, pos, end-pos, 0, format.TagDocumentNode, format.TagElementNode,
		format.TagAttributeNode, format.TagTextNode, format.TagCommentNode, format.TagPINode)
}

type nodeValidator struct {
	idExists bool
}

func (v nodeValidator) node(b []byte, off, n, depth int, allowed ...format.Tag) error {
	if depth > MaxDepth {
		return fmt.Errorf("node at %d: nesting deeper than %d: %w", off, MaxDepth, format.ErrBadLayout)
	}
	if n < format.TagSize {
		return fmt.Errorf("node at %d: %w", off, format.ErrTruncated)
	}
	kind := format.Tag(b[off])
	if !slices.Contains(allowed, kind) {
		return fmt.Errorf("node at %d: %s: %w", off, kind, format.ErrBadTag)
	}
	body, bn := off+format.TagSize, n-format.TagSize
	co := format.NodeContentOffset(kind, v.idExists)
	if bn < co {
		return fmt.Errorf("%s at %d: %w", kind, off, format.ErrTruncated)
	}
	c, cn := body+co, bn-co

	switch kind {
	case format.TagDocumentNode:
		return validateSequenceExact(b, c, cn, v.children(depth))
	case format.TagElementNode:
		return v.element(b, body, c, cn, depth)
	case format.TagAttributeNode, format.TagTextNode, format.TagCommentNode:
		return validateStringExact(b, c, cn)
	case format.TagPINode:
		size, err := validateString(b, c, cn)
		if err != nil {
			return fmt.Errorf("pi target: %w", err)
		}
		return validateStringExact(b, c+size, cn-size)
	}
	return fmt.Errorf("node at %d: %s: %w", off, kind, format.ErrBadTag)
}

func (v nodeValidator) children(depth int) entryValidator {
	return func(b []byte, off, n int) error {
		return v.node(b, off, n, depth+1,
			format.TagElementNode, format.TagTextNode, format.TagCommentNode, format.TagPINode)
	}
}

func (v nodeValidator) element(b []byte, body, c, cn, depth int) error {
	flags := b[body+format.NodeFixedOffset(format.TagElementNode, v.idExists)]
	known := format.ElementHasNamespaces | format.ElementHasAttributes | format.ElementHasChildren
	if flags&^known != 0 {
		return fmt.Errorf("element at %d: flags 0x%02x: %w", body, flags, format.ErrBadHeader)
	}
	pos, end := c, c+cn
	if flags&format.ElementHasNamespaces != 0 {
		size, err := validateSequence(b, pos, end-pos, validateNamespaceEntry)
		if err != nil {
			return fmt.Errorf("namespaces: %w", err)
		}
		if format.ReadU32(b, pos)%2 != 0 {
			return fmt.Errorf("namespaces at %d: odd entry count: %w", pos, format.ErrBadLayout)
		}
		pos += size
	}
	if flags&format.ElementHasAttributes != 0 {
		size, err := validateSequence(b, pos, end-pos, func(b []byte, off, n int) error {
			return v.node(b, off, n, depth+1, format.TagAttributeNode)
		})
		if err != nil {
			return fmt.Errorf("attributes: %w", err)
		}
		pos += size
	}
	if flags&format.ElementHasChildren != 0 {
		size, err := validateSequence(b, pos, end-pos, v.children(depth))
		if err != nil {
			return fmt.Errorf("children: %w", err)
		}
		pos += size
	}
	if pos != end {
		return fmt.Errorf("element at %d: %d trailing bytes: %w", body, end-pos, format.ErrBadLayout)
	}
	return nil
}

// Namespace chunks hold (prefix, uri) dictionary code pairs as xs:int entries.
func validateNamespaceEntry(b []byte, off, n int) error {
	if n != format.TagSize+format.IntSize || format.Tag(b[off]) != format.TagInt {
		return fmt.Errorf("namespace entry at %d: %w", off, format.ErrBadTag)
	}
	return nil
}
