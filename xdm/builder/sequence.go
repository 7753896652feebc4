package builder

import (
	"errors"

	"github.com/joshuapare/xdmkit/internal/format"
)

var (
	// ErrFinished is returned when items are added to, or Finish is called on,
	// a builder that has already finished.
	ErrFinished = errors.New("builder: sequence already finished")
	// ErrNoTarget is returned when the builder is used before Reset.
	ErrNoTarget = errors.New("builder: no output storage, call Reset")
)

// Region is anything exposing an encoded tagged value, such as *xdm.TaggedValue.
type Region interface {
	Bytes() []byte
}

// SequenceBuilder accumulates tagged items and writes them as one sequence.
// Entries are staged in an internal buffer so the slot table, whose size
// depends on the final count, can precede them in the output.
type SequenceBuilder struct {
	out      *ValueStorage
	data     ValueStorage
	lengths  []uint32
	finished bool
}

// Reset binds out as the output target and discards any partial state.
// out itself is not reset; the sequence is appended to whatever it holds.
func (b *SequenceBuilder) Reset(out *ValueStorage) {
	b.out = out
	b.data.Reset()
	b.lengths = b.lengths[:0]
	b.finished = false
}

// AddItem appends the bytes of one complete tagged value as the next entry.
// The item is not validated.
func (b *SequenceBuilder) AddItem(item Region) error {
	return b.AddBytes(item.Bytes())
}

// AddBytes appends raw tagged value bytes as the next entry.
func (b *SequenceBuilder) AddBytes(item []byte) error {
	if b.out == nil {
		return ErrNoTarget
	}
	if b.finished {
		return ErrFinished
	}
	_, _ = b.data.Write(item)
	b.lengths = append(b.lengths, uint32(len(item)))
	return nil
}

// Count returns the number of entries added since Reset.
func (b *SequenceBuilder) Count() int { return len(b.lengths) }

// Finish writes a TagSequence tagged value to the output storage.
func (b *SequenceBuilder) Finish() error {
	return b.finish(true)
}

// FinishPayload writes the sequence payload without a tag, for sequences
// embedded in node bodies and dictionaries.
func (b *SequenceBuilder) FinishPayload() error {
	return b.finish(false)
}

func (b *SequenceBuilder) finish(tagged bool) error {
	if b.out == nil {
		return ErrNoTarget
	}
	if b.finished {
		return ErrFinished
	}
	n := len(b.lengths)
	size := format.SequenceHeaderSize(n) + b.data.Len()
	if tagged {
		size += format.TagSize
	}
	b.out.Grow(size)

	if tagged {
		b.out.WriteTag(format.TagSequence)
	}
	b.out.WriteU32(uint32(n))
	off := uint32(format.SequenceHeaderSize(n))
	for _, l := range b.lengths {
		b.out.WriteU32(off)
		b.out.WriteU32(l)
		off += l
	}
	_, _ = b.out.Write(b.data.Bytes())
	b.finished = true
	return nil
}
