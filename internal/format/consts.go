// Package format holds the byte-level contract of the value encoding: the
// tag vocabulary, the sizes of fixed-width fields, node tree header masks,
// and the offset arithmetic shared by every node kind. It has no knowledge
// of views or builders so both sides of the codec agree on one definition.
//
// Every tagged value is laid out as:
//
//	0x00  1  tag
//	0x01  n  tag-specific payload
//
// Multi-byte integers are big-endian.
package format

// Tag is the one-byte discriminant at the start of every tagged value.
type Tag uint8

// Atomic tags.
const (
	TagUntypedAtomic Tag = 1
	TagString        Tag = 2
	TagAnyURI        Tag = 3

	TagBoolean Tag = 10
	TagDecimal Tag = 11
	TagInteger Tag = 12
	TagLong    Tag = 13
	TagInt     Tag = 14
	TagShort   Tag = 15
	TagByte    Tag = 16
	TagFloat   Tag = 17
	TagDouble  Tag = 18
)

// Structural tags. Node kind tags double as the NodeKind discriminant.
const (
	TagSequence      Tag = 100
	TagNodeTree      Tag = 101
	TagDocumentNode  Tag = 102
	TagElementNode   Tag = 103
	TagAttributeNode Tag = 104
	TagTextNode      Tag = 105
	TagCommentNode   Tag = 106
	TagPINode        Tag = 107
)

const (
	// TagSize is the width of the leading tag byte.
	TagSize = 1

	// LocalNodeIDSize is the width of the optional local node id carried by
	// every node body when the owning tree sets NodeIDExists.
	LocalNodeIDSize = 4

	// NameCodeSize is the width of one dictionary index.
	NameCodeSize = 4

	// NameSize is prefix + namespace uri + local name codes.
	NameSize = 3 * NameCodeSize

	// NoName marks an absent name code.
	NoName int32 = -1
)

// Sequence payload:
//
//	0x00  4        entry count
//	0x04  8*count  (offset, length) per entry, offsets from payload start
//	....  n        entry bytes
const (
	SeqCountOffset = 0x00
	SeqCountSize   = 4
	SeqTableOffset = SeqCountOffset + SeqCountSize
	SeqSlotSize    = 8
	SeqSlotLenOff  = 4
	SeqEmptySize   = SeqTableOffset
)

// String payload:
//
//	0x00  4  byte length
//	0x04  n  UTF-8 bytes
const (
	StringLenSize    = 4
	StringDataOffset = StringLenSize
)

// Fixed scalar payload sizes.
const (
	BooleanSize = 1
	ByteSize    = 1
	ShortSize   = 2
	IntSize     = 4
	LongSize    = 8
	FloatSize   = 4
	DoubleSize  = 8

	// Decimal payload: 1 byte scale followed by the unscaled int64.
	DecimalScaleSize = 1
	DecimalSize      = DecimalScaleSize + LongSize
)

// Node tree payload:
//
//	0x00  1  header flags
//	0x01  n  dictionary sequence payload (iff DictionaryExists)
//	....  n  root node tagged value
const (
	TreeHeaderOffset = 0x00
	TreeHeaderSize   = 1

	TreeNodeIDExists     uint8 = 0x01
	TreeDictionaryExists uint8 = 0x02
)

// Element fixed fields, after the optional local node id:
//
//	0x00  1   chunk flags
//	0x01  12  name (prefix, uri, local)
const (
	ElementFlagsSize = 1
	ElementNameOff   = ElementFlagsSize

	ElementHasNamespaces uint8 = 0x01
	ElementHasAttributes uint8 = 0x02
	ElementHasChildren   uint8 = 0x04
)
