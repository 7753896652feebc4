package xdm

import "github.com/joshuapare/xdmkit/internal/format"

// Node is a view over a node tagged value: the node kind tag followed by the
// node body. Offsets inside the body come from the format package and depend
// only on the kind and on the owning tree's id-presence flag, so every kind
// view below shares this one implementation.
type Node struct {
	Pointable
}

// Kind returns the node kind tag.
func (n *Node) Kind() format.Tag {
	return format.Tag(n.bytes[n.start])
}

func (n *Node) bodyStart() int { return n.start + format.TagSize }

func (n *Node) bodyLength() int { return n.length - format.TagSize }

// LocalNodeID returns the node's local id, or ok == false when tree carries none.
func (n *Node) LocalNodeID(tree *NodeTree) (id int32, ok bool) {
	if !tree.NodeIDExists() {
		return 0, false
	}
	return format.ReadI32(n.bytes, n.bodyStart()+format.NodeIDOffset), true
}

// ContentOffset returns the absolute offset of the content sub-region.
func (n *Node) ContentOffset(tree *NodeTree) int {
	return n.bodyStart() + format.NodeContentOffset(n.Kind(), tree.NodeIDExists())
}

// ContentSize returns the size of the content sub-region.
func (n *Node) ContentSize(tree *NodeTree) int {
	return format.NodeContentSize(n.Kind(), tree.NodeIDExists(), n.bodyLength())
}

// Content anchors dst over the content sub-region.
func (n *Node) Content(tree *NodeTree, dst Settable) {
	dst.Set(n.bytes, n.ContentOffset(tree), n.ContentSize(tree))
}

// Name holds the dictionary codes of a qualified name.
type Name struct {
	Prefix int32
	URI    int32
	Local  int32
}

func (n *Node) name(tree *NodeTree) Name {
	off := n.bodyStart() + format.NameFieldOffset(n.Kind(), tree.NodeIDExists())
	return Name{
		Prefix: format.ReadI32(n.bytes, off),
		URI:    format.ReadI32(n.bytes, off+format.NameCodeSize),
		Local:  format.ReadI32(n.bytes, off+2*format.NameCodeSize),
	}
}

// DocumentNode views a document node. Its content is the children sequence.
type DocumentNode struct {
	Node
}

// Children anchors dst over the children sequence.
func (d *DocumentNode) Children(tree *NodeTree, dst *Sequence) {
	d.Content(tree, dst)
}

// ElementNode views an element node.
//
//	[id?][flags u8][prefix i32][uri i32][local i32][namespaces?][attributes?][children?]
type ElementNode struct {
	Node
}

// Flags returns the chunk presence flags.
func (e *ElementNode) Flags(tree *NodeTree) uint8 {
	return e.bytes[e.bodyStart()+format.NodeFixedOffset(format.TagElementNode, tree.NodeIDExists())]
}

// Name returns the element name codes.
func (e *ElementNode) Name(tree *NodeTree) Name { return e.name(tree) }

// chunk anchors dst over the chunk selected by want, stepping over the
// chunks stored before it.
func (e *ElementNode) chunk(tree *NodeTree, want uint8, dst *Sequence) bool {
	flags := e.Flags(tree)
	if flags&want == 0 {
		return false
	}
	off := e.ContentOffset(tree)
	for _, f := range [...]uint8{format.ElementHasNamespaces, format.ElementHasAttributes, format.ElementHasChildren} {
		if flags&f == 0 {
			continue
		}
		size := sequenceSizeAt(e.bytes, off)
		if f == want {
			dst.Set(e.bytes, off, size)
			return true
		}
		off += size
	}
	return false
}

// Namespaces anchors dst over the namespace chunk.
func (e *ElementNode) Namespaces(tree *NodeTree, dst *Sequence) bool {
	return e.chunk(tree, format.ElementHasNamespaces, dst)
}

// Attributes anchors dst over the attribute chunk.
func (e *ElementNode) Attributes(tree *NodeTree, dst *Sequence) bool {
	return e.chunk(tree, format.ElementHasAttributes, dst)
}

// Children anchors dst over the children chunk.
func (e *ElementNode) Children(tree *NodeTree, dst *Sequence) bool {
	return e.chunk(tree, format.ElementHasChildren, dst)
}

// AttributeNode views an attribute node. Its content is the value string.
type AttributeNode struct {
	Node
}

func (a *AttributeNode) Name(tree *NodeTree) Name { return a.name(tree) }

func (a *AttributeNode) Value(tree *NodeTree, dst *String) { a.Content(tree, dst) }

// TextNode views a text node.
type TextNode struct {
	Node
}

func (t *TextNode) Value(tree *NodeTree, dst *String) { t.Content(tree, dst) }

// CommentNode views a comment node.
type CommentNode struct {
	Node
}

func (c *CommentNode) Value(tree *NodeTree, dst *String) { c.Content(tree, dst) }

// PINode views a processing instruction: target string then data string.
type PINode struct {
	Node
}

func (p *PINode) Target(tree *NodeTree, dst *String) {
	off := p.ContentOffset(tree)
	dst.Set(p.bytes, off, format.StringSize(int(format.ReadU32(p.bytes, off))))
}

func (p *PINode) Data(tree *NodeTree, dst *String) {
	off := p.ContentOffset(tree)
	off += format.StringSize(int(format.ReadU32(p.bytes, off)))
	dst.Set(p.bytes, off, p.start+p.length-off)
}

// RootLocalNodeID reads the local node id of the root of the node tree held
// by tv. tree and node are caller-owned scratch views. ok is false when tv is
// not a node tree or its tree carries no ids.
func RootLocalNodeID(tv *TaggedValue, tree *NodeTree, node *Node) (id int32, ok bool) {
	if tv.Tag() != format.TagNodeTree {
		return 0, false
	}
	tv.Value(tree)
	tree.RootNode(node)
	return node.LocalNodeID(tree)
}
