// Package mmfile maps encoded value files read-only.
package mmfile

import "errors"

// ErrClosed is returned when a closed Region is closed again.
var ErrClosed = errors.New("mmfile: region already closed")

// Region is a read-only view of a whole file. Bytes must not be modified
// and must not be used after Close.
type Region struct {
	data   []byte
	mapped bool
	closed bool
}

// Bytes returns the file contents.
func (r *Region) Bytes() []byte { return r.data }

// Len returns the file size.
func (r *Region) Len() int { return len(r.data) }

// Mapped reports whether the contents are memory-mapped rather than read.
func (r *Region) Mapped() bool { return r.mapped }

// Close releases the region.
func (r *Region) Close() error {
	if r.closed {
		return ErrClosed
	}
	r.closed = true
	data := r.data
	r.data = nil
	if !r.mapped {
		return nil
	}
	return unmap(data)
}
