package xdm

import "github.com/joshuapare/xdmkit/internal/format"

// NodeTree is a view over a node tree payload (the bytes after TagNodeTree).
//
//	0x00  1  header flags
//	0x01  n  dictionary, a sequence of xs:string entries (iff DictionaryExists)
//	....  n  root node, a tagged value with a node kind tag
type NodeTree struct {
	Pointable
}

// Header returns the raw header flags.
func (t *NodeTree) Header() uint8 {
	return t.bytes[t.start+format.TreeHeaderOffset]
}

// NodeIDExists reports whether every node body in this tree carries a local node id.
func (t *NodeTree) NodeIDExists() bool {
	return t.Header()&format.TreeNodeIDExists != 0
}

// DictionaryExists reports whether the tree embeds a name dictionary.
func (t *NodeTree) DictionaryExists() bool {
	return t.Header()&format.TreeDictionaryExists != 0
}

func (t *NodeTree) dictionaryOffset() int {
	return t.start + format.TreeHeaderSize
}

func (t *NodeTree) dictionarySize() int {
	if !t.DictionaryExists() {
		return 0
	}
	return sequenceSizeAt(t.bytes, t.dictionaryOffset())
}

func (t *NodeTree) rootOffset() int {
	return t.dictionaryOffset() + t.dictionarySize()
}

// Dictionary anchors dst over the name dictionary. It reports false, leaving
// dst untouched, when the tree has none.
func (t *NodeTree) Dictionary(dst *Dictionary) bool {
	if !t.DictionaryExists() {
		return false
	}
	dst.Set(t.bytes, t.dictionaryOffset(), t.dictionarySize())
	return true
}

// RootNode anchors dst over the root node tagged value.
func (t *NodeTree) RootNode(dst Settable) {
	off := t.rootOffset()
	dst.Set(t.bytes, off, t.length-(off-t.start))
}

// RootKind returns the node kind tag of the root node.
func (t *NodeTree) RootKind() format.Tag {
	return format.Tag(t.bytes[t.rootOffset()])
}

// RootNodeID returns the local node id of the root node, or ok == false when
// the tree carries no ids.
func (t *NodeTree) RootNodeID() (id int32, ok bool) {
	if !t.NodeIDExists() {
		return 0, false
	}
	body := t.rootOffset() + format.TagSize
	return format.ReadI32(t.bytes, body+format.NodeIDOffset), true
}

// Dictionary is a view over a tree's name dictionary. Name codes index its
// entries; format.NoName marks an absent name part.
type Dictionary struct {
	Sequence
}

// Lookup anchors dst over the string for code and reports whether the code
// is in range.
func (d *Dictionary) Lookup(code int32, dst *String) bool {
	if code < 0 || int(code) >= d.EntryCount() {
		return false
	}
	off := d.start + d.EntryOffset(int(code))
	dst.Set(d.bytes, off+format.TagSize, d.EntryLength(int(code))-format.TagSize)
	return true
}

// LookupString returns the string for code, or "" when absent.
func (d *Dictionary) LookupString(code int32) string {
	var s String
	if !d.Lookup(code, &s) {
		return ""
	}
	return s.String()
}
