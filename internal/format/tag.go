package format

import "fmt"

var tagNames = map[Tag]string{
	TagUntypedAtomic: "xs:untypedAtomic",
	TagString:        "xs:string",
	TagAnyURI:        "xs:anyURI",
	TagBoolean:       "xs:boolean",
	TagDecimal:       "xs:decimal",
	TagInteger:       "xs:integer",
	TagLong:          "xs:long",
	TagInt:           "xs:int",
	TagShort:         "xs:short",
	TagByte:          "xs:byte",
	TagFloat:         "xs:float",
	TagDouble:        "xs:double",
	TagSequence:      "sequence",
	TagNodeTree:      "node-tree",
	TagDocumentNode:  "document-node",
	TagElementNode:   "element",
	TagAttributeNode: "attribute",
	TagTextNode:      "text",
	TagCommentNode:   "comment",
	TagPINode:        "processing-instruction",
}

func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// Known reports whether t is part of the vocabulary.
func (t Tag) Known() bool {
	_, ok := tagNames[t]
	return ok
}

// IsNode reports whether t is one of the node kind tags.
func (t Tag) IsNode() bool {
	return t >= TagDocumentNode && t <= TagPINode
}

// IsStringLike reports whether the payload of t is a string payload.
func (t Tag) IsStringLike() bool {
	return t == TagUntypedAtomic || t == TagString || t == TagAnyURI
}

// IsAtomic reports whether t is a scalar tag.
func (t Tag) IsAtomic() bool {
	return t.Known() && t < TagSequence
}

// FixedSize returns the payload size of fixed-width scalar tags.
// ok is false for variable-size payloads.
func (t Tag) FixedSize() (n int, ok bool) {
	switch t {
	case TagBoolean:
		return BooleanSize, true
	case TagByte:
		return ByteSize, true
	case TagShort:
		return ShortSize, true
	case TagInt:
		return IntSize, true
	case TagInteger, TagLong:
		return LongSize, true
	case TagFloat:
		return FloatSize, true
	case TagDouble:
		return DoubleSize, true
	case TagDecimal:
		return DecimalSize, true
	}
	return 0, false
}
