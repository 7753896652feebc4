package sequence

import (
	"bytes"

	"github.com/zeebo/xxh3"
)

// membership records node identities seen in one operand: local node ids in
// one set, encoded tree bytes in another. Byte entries alias the operand
// regions and are only meaningful for the duration of one Evaluate.
type membership struct {
	ids    map[int32]struct{}
	hashes map[uint64][][]byte
}

func newMembership() membership {
	return membership{
		ids:    make(map[int32]struct{}),
		hashes: make(map[uint64][][]byte),
	}
}

func (m *membership) reset() {
	clear(m.ids)
	clear(m.hashes)
}

func (m *membership) addID(id int32) {
	m.ids[id] = struct{}{}
}

func (m *membership) hasID(id int32) bool {
	_, ok := m.ids[id]
	return ok
}

func (m *membership) addBytes(b []byte) {
	h := xxh3.Hash(b)
	for _, seen := range m.hashes[h] {
		if bytes.Equal(seen, b) {
			return
		}
	}
	m.hashes[h] = append(m.hashes[h], b)
}

func (m *membership) hasBytes(b []byte) bool {
	for _, seen := range m.hashes[xxh3.Hash(b)] {
		if bytes.Equal(seen, b) {
			return true
		}
	}
	return false
}

// add records both identities of an item; id is only recorded when hasID.
func (m *membership) add(it identity) {
	if it.hasID {
		m.addID(it.id)
	}
	m.addBytes(it.content)
}

// contains tests an item the way the set operators do: by id when the item
// carries one, by content otherwise.
func (m *membership) contains(it identity) bool {
	if it.hasID {
		return m.hasID(it.id)
	}
	return m.hasBytes(it.content)
}
