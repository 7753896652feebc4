package builder

import (
	"github.com/joshuapare/xdmkit/internal/format"
	"github.com/joshuapare/xdmkit/xdm"
)

// ValueStorage is a growable, append-only byte buffer that owns what it
// accumulates. Reset keeps the allocation for reuse.
type ValueStorage struct {
	buf []byte
}

// Reset discards the contents, keeping capacity.
func (s *ValueStorage) Reset() { s.buf = s.buf[:0] }

// Len returns the number of bytes written.
func (s *ValueStorage) Len() int { return len(s.buf) }

// Bytes returns the written bytes. The slice aliases the storage and is
// invalidated by the next Reset or write.
func (s *ValueStorage) Bytes() []byte { return s.buf }

// CopyBytes returns an independent copy of the written bytes.
func (s *ValueStorage) CopyBytes() []byte {
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// Grow ensures room for n more bytes.
func (s *ValueStorage) Grow(n int) {
	if cap(s.buf)-len(s.buf) < n {
		next := make([]byte, len(s.buf), 2*cap(s.buf)+n)
		copy(next, s.buf)
		s.buf = next
	}
}

// Write appends p. It never fails.
func (s *ValueStorage) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// WriteByte appends c.
func (s *ValueStorage) WriteByte(c byte) error {
	s.buf = append(s.buf, c)
	return nil
}

// WriteTag appends a tag byte.
func (s *ValueStorage) WriteTag(t format.Tag) {
	s.buf = append(s.buf, byte(t))
}

// WriteU32 appends a big-endian uint32.
func (s *ValueStorage) WriteU32(v uint32) {
	s.buf = append(s.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// WriteI32 appends a big-endian int32.
func (s *ValueStorage) WriteI32(v int32) { s.WriteU32(uint32(v)) }

// WriteU16 appends a big-endian uint16.
func (s *ValueStorage) WriteU16(v uint16) {
	s.buf = append(s.buf, byte(v>>8), byte(v))
}

// WriteU64 appends a big-endian uint64.
func (s *ValueStorage) WriteU64(v uint64) {
	s.WriteU32(uint32(v >> 32))
	s.WriteU32(uint32(v))
}

// Set anchors dst over the written bytes.
func (s *ValueStorage) Set(dst xdm.Settable) {
	dst.Set(s.buf, 0, len(s.buf))
}

// TaggedValue anchors tv over the written bytes.
func (s *ValueStorage) TaggedValue(tv *xdm.TaggedValue) {
	s.Set(tv)
}
