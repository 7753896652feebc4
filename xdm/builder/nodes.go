package builder

import "github.com/joshuapare/xdmkit/internal/format"

// Document returns a document node description.
func Document(children ...*Node) *Node {
	return &Node{Kind: format.TagDocumentNode, Children: children}
}

// Element returns an element node description with an unqualified name.
func Element(local string, children ...*Node) *Node {
	return &Node{Kind: format.TagElementNode, Name: QName{Local: local}, Children: children}
}

// Attribute returns an attribute node description with an unqualified name.
func Attribute(local, value string) *Node {
	return &Node{Kind: format.TagAttributeNode, Name: QName{Local: local}, Value: value}
}

// Text returns a text node description.
func Text(v string) *Node {
	return &Node{Kind: format.TagTextNode, Value: v}
}

// Comment returns a comment node description.
func Comment(v string) *Node {
	return &Node{Kind: format.TagCommentNode, Value: v}
}

// PI returns a processing instruction description.
func PI(target, data string) *Node {
	return &Node{Kind: format.TagPINode, Target: target, Value: data}
}

// WithID sets the local node id and returns n.
func (n *Node) WithID(id int32) *Node {
	n.ID = id
	return n
}

// WithAttributes appends attributes and returns n.
func (n *Node) WithAttributes(attrs ...*Node) *Node {
	n.Attributes = append(n.Attributes, attrs...)
	return n
}

// WithNamespaces appends namespace bindings and returns n.
func (n *Node) WithNamespaces(nss ...Namespace) *Node {
	n.Namespaces = append(n.Namespaces, nss...)
	return n
}

// AssignIDs numbers n and its descendants in document order (node,
// attributes, children) starting at first, and returns the next unused id.
func AssignIDs(n *Node, first int32) int32 {
	n.ID = first
	next := first + 1
	for _, a := range n.Attributes {
		next = AssignIDs(a, next)
	}
	for _, c := range n.Children {
		next = AssignIDs(c, next)
	}
	return next
}
