package xdm

import "github.com/joshuapare/xdmkit/internal/format"

// Sequence is a view over a sequence payload (the bytes after TagSequence,
// or an embedded chunk inside a node body).
//
//	0x00  4        entry count
//	0x04  8*count  (offset, length) per entry, relative to the payload start
//	....  n        entries, each a complete tagged value
type Sequence struct {
	Pointable
}

// EntryCount returns the number of entries.
func (s *Sequence) EntryCount() int {
	return int(format.ReadU32(s.bytes, s.start+format.SeqCountOffset))
}

func (s *Sequence) slot(i int) int {
	return s.start + format.SeqTableOffset + i*format.SeqSlotSize
}

// EntryOffset returns the offset of entry i relative to the payload start.
func (s *Sequence) EntryOffset(i int) int {
	return int(format.ReadU32(s.bytes, s.slot(i)))
}

// EntryLength returns the byte length of entry i.
func (s *Sequence) EntryLength(i int) int {
	return int(format.ReadU32(s.bytes, s.slot(i)+format.SeqSlotLenOff))
}

// Entry anchors dst over entry i.
func (s *Sequence) Entry(i int, dst Settable) {
	dst.Set(s.bytes, s.start+s.EntryOffset(i), s.EntryLength(i))
}

// EncodedSize returns the size the slot table says this payload occupies.
// It is used to step over sequence chunks embedded back to back.
func (s *Sequence) EncodedSize() int {
	return sequenceSizeAt(s.bytes, s.start)
}

func sequenceSizeAt(b []byte, start int) int {
	n := int(format.ReadU32(b, start+format.SeqCountOffset))
	if n == 0 {
		return format.SeqEmptySize
	}
	last := start + format.SeqTableOffset + (n-1)*format.SeqSlotSize
	return format.SequenceSize(n, format.ReadU32(b, last), format.ReadU32(b, last+format.SeqSlotLenOff))
}
