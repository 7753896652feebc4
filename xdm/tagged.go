package xdm

import "github.com/joshuapare/xdmkit/internal/format"

// TaggedValue is a view over a tag byte followed by its payload.
type TaggedValue struct {
	Pointable
}

// Tag returns the leading tag byte.
func (tv *TaggedValue) Tag() format.Tag {
	return format.Tag(tv.bytes[tv.start])
}

// Value anchors dst over the payload following the tag.
func (tv *TaggedValue) Value(dst Settable) {
	dst.Set(tv.bytes, tv.start+format.TagSize, tv.length-format.TagSize)
}

// PayloadLength returns the payload size in bytes.
func (tv *TaggedValue) PayloadLength() int {
	return tv.length - format.TagSize
}
