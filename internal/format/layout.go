package format

// Node body layout. A node body is everything after the node kind tag:
//
//	[local node id, iff tree NodeIDExists][kind fixed fields][content]
//
// Every node kind computes its offsets through these functions, so the
// id-presence rule exists in exactly one place. Offsets are relative to the
// start of the node body.

// NodeIDSize returns the width of the local node id field for a tree with
// the given id-presence flag.
func NodeIDSize(idExists bool) int {
	if idExists {
		return LocalNodeIDSize
	}
	return 0
}

// NodeIDOffset is the offset of the local node id. It is the same for
// every kind.
const NodeIDOffset = 0

// NodeFixedSize returns the size of the fields kind carries between the id
// and its content.
func NodeFixedSize(kind Tag) int {
	switch kind {
	case TagElementNode:
		return ElementFlagsSize + NameSize
	case TagAttributeNode:
		return NameSize
	}
	return 0
}

// NodeFixedOffset returns the offset of the kind fixed fields.
func NodeFixedOffset(kind Tag, idExists bool) int {
	return NodeIDOffset + NodeIDSize(idExists)
}

// NodeContentOffset returns the offset of the content sub-region.
func NodeContentOffset(kind Tag, idExists bool) int {
	return NodeFixedOffset(kind, idExists) + NodeFixedSize(kind)
}

// NodeContentSize returns the content size of a body of bodyLen bytes.
// The result is negative when the body is too short for its fixed fields.
func NodeContentSize(kind Tag, idExists bool, bodyLen int) int {
	return bodyLen - NodeContentOffset(kind, idExists)
}

// NameFieldOffset returns the offset of the name codes for element and
// attribute bodies, and -1 for kinds without a name.
func NameFieldOffset(kind Tag, idExists bool) int {
	switch kind {
	case TagElementNode:
		return NodeFixedOffset(kind, idExists) + ElementNameOff
	case TagAttributeNode:
		return NodeFixedOffset(kind, idExists)
	}
	return -1
}

// SequenceSize returns the total size of a sequence payload given its entry
// count and the (offset, length) of its last slot.
func SequenceSize(count int, lastOff, lastLen uint32) int {
	if count == 0 {
		return SeqEmptySize
	}
	return int(lastOff) + int(lastLen)
}

// SequenceHeaderSize returns the size of the count and slot table.
func SequenceHeaderSize(count int) int {
	return SeqTableOffset + count*SeqSlotSize
}

// StringSize returns the payload size of a string of n bytes.
func StringSize(n int) int {
	return StringLenSize + n
}
