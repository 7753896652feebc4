package xdm

// Settable is implemented by every view; it re-anchors the view over
// b[start : start+length].
type Settable interface {
	Set(b []byte, start, length int)
}

// Pointable is a non-owning view over a byte region.
type Pointable struct {
	bytes  []byte
	start  int
	length int
}

// Set anchors the view over b[start : start+length].
func (p *Pointable) Set(b []byte, start, length int) {
	p.bytes = b
	p.start = start
	p.length = length
}

// SetBytes anchors the view over all of b.
func (p *Pointable) SetBytes(b []byte) {
	p.Set(b, 0, len(b))
}

// SetPointable anchors the view over the same region as o.
func (p *Pointable) SetPointable(o *Pointable) {
	p.Set(o.bytes, o.start, o.length)
}

// ByteArray returns the whole backing buffer.
func (p *Pointable) ByteArray() []byte { return p.bytes }

// StartOffset returns the offset of the region inside ByteArray.
func (p *Pointable) StartOffset() int { return p.start }

// Length returns the region length.
func (p *Pointable) Length() int { return p.length }

// Bytes returns the region as a sub-slice of the backing buffer. The slice
// aliases the buffer; capacity is clipped so appends cannot clobber it.
func (p *Pointable) Bytes() []byte {
	end := p.start + p.length
	return p.bytes[p.start:end:end]
}
