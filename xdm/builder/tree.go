package builder

import (
	"errors"
	"fmt"

	"github.com/joshuapare/xdmkit/internal/format"
)

// ErrInvalidNode is returned when a node description cannot be encoded.
var ErrInvalidNode = errors.New("builder: invalid node")

// QName is a qualified name in string form. Empty parts are encoded as
// format.NoName.
type QName struct {
	Prefix string
	URI    string
	Local  string
}

// Namespace is an in-scope namespace binding declared on an element.
type Namespace struct {
	Prefix string
	URI    string
}

// Node describes one node of a tree to encode. Which fields are read depends
// on Kind:
//
//   - document: Children
//   - element: Name, Namespaces, Attributes, Children
//   - attribute: Name, Value
//   - text, comment: Value
//   - processing-instruction: Target, Value
type Node struct {
	Kind       format.Tag
	ID         int32
	Name       QName
	Value      string
	Target     string
	Namespaces []Namespace
	Attributes []*Node
	Children   []*Node
}

// TreeOptions configures TreeBuilder.
type TreeOptions struct {
	// NodeIDs writes every node's ID as its local node id and sets the
	// tree's NodeIDExists flag.
	NodeIDs bool
}

// TreeBuilder encodes node descriptions as TagNodeTree values. Names are
// interned into a per-tree dictionary in order of first use. A TreeBuilder
// may be reused for many trees but not concurrently.
type TreeBuilder struct {
	opts  TreeOptions
	codes map[string]int32
	names []string
}

// NewTreeBuilder returns a TreeBuilder using opts.
func NewTreeBuilder(opts TreeOptions) *TreeBuilder {
	return &TreeBuilder{opts: opts, codes: make(map[string]int32)}
}

// Build appends the tagged node tree rooted at root to dst. Nothing is
// written when root is invalid.
func (tb *TreeBuilder) Build(dst *ValueStorage, root *Node) error {
	clear(tb.codes)
	tb.names = tb.names[:0]
	if root == nil {
		return fmt.Errorf("%w: nil root", ErrInvalidNode)
	}
	if err := tb.intern(root, 0); err != nil {
		return err
	}

	var body ValueStorage
	if err := tb.encodeNode(&body, root); err != nil {
		return err
	}

	var header uint8
	if tb.opts.NodeIDs {
		header |= format.TreeNodeIDExists
	}
	if len(tb.names) > 0 {
		header |= format.TreeDictionaryExists
	}
	dst.WriteTag(format.TagNodeTree)
	_ = dst.WriteByte(header)
	if len(tb.names) > 0 {
		var sb SequenceBuilder
		var entry ValueStorage
		sb.Reset(dst)
		for _, name := range tb.names {
			entry.Reset()
			_ = PutString(&entry, format.TagString, name)
			if err := sb.AddBytes(entry.Bytes()); err != nil {
				return err
			}
		}
		if err := sb.FinishPayload(); err != nil {
			return err
		}
	}
	_, _ = dst.Write(body.Bytes())
	return nil
}

// intern walks the tree, checks parent/child kinds, and assigns name codes.
func (tb *TreeBuilder) intern(n *Node, depth int) error {
	if depth > 512 {
		return fmt.Errorf("%w: nesting too deep", ErrInvalidNode)
	}
	if !n.Kind.IsNode() {
		return fmt.Errorf("%w: %s is not a node kind", ErrInvalidNode, n.Kind)
	}
	switch n.Kind {
	case format.TagElementNode, format.TagAttributeNode:
		tb.code(n.Name.Prefix)
		tb.code(n.Name.URI)
		tb.code(n.Name.Local)
	}
	for _, ns := range n.Namespaces {
		tb.code(ns.Prefix)
		tb.code(ns.URI)
	}
	for _, a := range n.Attributes {
		if a == nil || a.Kind != format.TagAttributeNode {
			return fmt.Errorf("%w: attribute list of %s holds a non-attribute", ErrInvalidNode, n.Kind)
		}
		if err := tb.intern(a, depth+1); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if c == nil {
			return fmt.Errorf("%w: nil child", ErrInvalidNode)
		}
		switch c.Kind {
		case format.TagElementNode, format.TagTextNode, format.TagCommentNode, format.TagPINode:
		default:
			return fmt.Errorf("%w: %s cannot be a child of %s", ErrInvalidNode, c.Kind, n.Kind)
		}
		if err := tb.intern(c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (tb *TreeBuilder) code(s string) int32 {
	if s == "" {
		return format.NoName
	}
	if c, ok := tb.codes[s]; ok {
		return c
	}
	c := int32(len(tb.names))
	tb.codes[s] = c
	tb.names = append(tb.names, s)
	return c
}

func (tb *TreeBuilder) writeName(dst *ValueStorage, q QName) {
	dst.WriteI32(tb.code(q.Prefix))
	dst.WriteI32(tb.code(q.URI))
	dst.WriteI32(tb.code(q.Local))
}

func (tb *TreeBuilder) encodeNode(dst *ValueStorage, n *Node) error {
	dst.WriteTag(n.Kind)
	if tb.opts.NodeIDs {
		dst.WriteI32(n.ID)
	}
	switch n.Kind {
	case format.TagDocumentNode:
		return tb.writeNodes(dst, n.Children)
	case format.TagElementNode:
		var flags uint8
		if len(n.Namespaces) > 0 {
			flags |= format.ElementHasNamespaces
		}
		if len(n.Attributes) > 0 {
			flags |= format.ElementHasAttributes
		}
		if len(n.Children) > 0 {
			flags |= format.ElementHasChildren
		}
		_ = dst.WriteByte(flags)
		tb.writeName(dst, n.Name)
		if len(n.Namespaces) > 0 {
			tb.writeNamespaces(dst, n.Namespaces)
		}
		if len(n.Attributes) > 0 {
			if err := tb.writeNodes(dst, n.Attributes); err != nil {
				return err
			}
		}
		if len(n.Children) > 0 {
			return tb.writeNodes(dst, n.Children)
		}
	case format.TagAttributeNode:
		tb.writeName(dst, n.Name)
		putStringPayload(dst, n.Value)
	case format.TagTextNode, format.TagCommentNode:
		putStringPayload(dst, n.Value)
	case format.TagPINode:
		putStringPayload(dst, n.Target)
		putStringPayload(dst, n.Value)
	}
	return nil
}

// writeNodes writes nodes as an untagged sequence payload.
func (tb *TreeBuilder) writeNodes(dst *ValueStorage, nodes []*Node) error {
	var sb SequenceBuilder
	var tmp ValueStorage
	sb.Reset(dst)
	for _, c := range nodes {
		tmp.Reset()
		if err := tb.encodeNode(&tmp, c); err != nil {
			return err
		}
		if err := sb.AddBytes(tmp.Bytes()); err != nil {
			return err
		}
	}
	return sb.FinishPayload()
}

func (tb *TreeBuilder) writeNamespaces(dst *ValueStorage, nss []Namespace) {
	var sb SequenceBuilder
	var tmp ValueStorage
	sb.Reset(dst)
	for _, ns := range nss {
		for _, code := range [2]int32{tb.code(ns.Prefix), tb.code(ns.URI)} {
			tmp.Reset()
			PutInt(&tmp, code)
			_ = sb.AddBytes(tmp.Bytes())
		}
	}
	_ = sb.FinishPayload()
}
