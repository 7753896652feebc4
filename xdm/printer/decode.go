package printer

import (
	"strconv"

	"github.com/joshuapare/xdmkit/internal/format"
	"github.com/joshuapare/xdmkit/xdm"
)

// item is the decoded form of one tagged value. Exactly one of Value, Items
// or Tree is set, except for truncated containers which set none.
type item struct {
	tag       format.Tag
	Tag       string `json:"tag"`
	Value     any    `json:"value,omitempty"`
	Items     []item `json:"items,omitempty"`
	Tree      *node  `json:"tree,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`
}

// node is the decoded form of one node, with names resolved through the
// owning tree's dictionary.
type node struct {
	kind       format.Tag
	Kind       string      `json:"kind"`
	ID         *int32      `json:"id,omitempty"`
	Name       string      `json:"name,omitempty"`
	URI        string      `json:"uri,omitempty"`
	Value      *string     `json:"value,omitempty"`
	Target     string      `json:"target,omitempty"`
	Namespaces []namespace `json:"namespaces,omitempty"`
	Attributes []node      `json:"attributes,omitempty"`
	Children   []node      `json:"children,omitempty"`
	Truncated  bool        `json:"truncated,omitempty"`
}

type namespace struct {
	Prefix string `json:"prefix"`
	URI    string `json:"uri"`
}

func decode(tv *xdm.TaggedValue, depth, maxDepth int) item {
	tag := tv.Tag()
	it := item{tag: tag, Tag: tag.String()}

	switch tag {
	case format.TagUntypedAtomic, format.TagString, format.TagAnyURI:
		var s xdm.String
		tv.Value(&s)
		it.Value = s.String()
	case format.TagBoolean:
		var v xdm.Boolean
		tv.Value(&v)
		it.Value = v.Boolean()
	case format.TagInteger, format.TagLong:
		var v xdm.Long
		tv.Value(&v)
		it.Value = v.Long()
	case format.TagInt:
		var v xdm.Int
		tv.Value(&v)
		it.Value = v.Int()
	case format.TagShort:
		var v xdm.Short
		tv.Value(&v)
		it.Value = v.Short()
	case format.TagByte:
		var v xdm.Byte
		tv.Value(&v)
		it.Value = v.Byte()
	case format.TagFloat:
		var v xdm.Float
		tv.Value(&v)
		it.Value = v.Float()
	case format.TagDouble:
		var v xdm.Double
		tv.Value(&v)
		it.Value = v.Double()
	case format.TagDecimal:
		var v xdm.Decimal
		tv.Value(&v)
		it.Value = v.Rat().FloatString(int(v.Scale()))
	case format.TagSequence:
		if maxDepth > 0 && depth >= maxDepth {
			it.Truncated = true
			return it
		}
		var seq xdm.Sequence
		var entry xdm.TaggedValue
		tv.Value(&seq)
		it.Items = make([]item, seq.EntryCount())
		for i := range it.Items {
			seq.Entry(i, &entry)
			it.Items[i] = decode(&entry, depth+1, maxDepth)
		}
	case format.TagNodeTree:
		var tree xdm.NodeTree
		var root xdm.Node
		tv.Value(&tree)
		tree.RootNode(&root)
		d := treeDecoder{tree: &tree, maxDepth: maxDepth}
		if tree.DictionaryExists() {
			tree.Dictionary(&d.dict)
			d.hasDict = true
		}
		n := d.node(&root, depth+1)
		it.Tree = &n
	default:
		it.Value = tv.Bytes()[format.TagSize:]
	}
	return it
}

type treeDecoder struct {
	tree     *xdm.NodeTree
	dict     xdm.Dictionary
	hasDict  bool
	maxDepth int
}

func (d *treeDecoder) lookup(code int32) string {
	if !d.hasDict {
		return ""
	}
	return d.dict.LookupString(code)
}

func (d *treeDecoder) qname(n xdm.Name) string {
	local := d.lookup(n.Local)
	if prefix := d.lookup(n.Prefix); prefix != "" {
		return prefix + ":" + local
	}
	return local
}

func (d *treeDecoder) node(n *xdm.Node, depth int) node {
	out := node{kind: n.Kind(), Kind: n.Kind().String()}
	if id, ok := n.LocalNodeID(d.tree); ok {
		out.ID = &id
	}
	if d.maxDepth > 0 && depth > d.maxDepth {
		out.Truncated = true
		return out
	}

	var s xdm.String
	switch n.Kind() {
	case format.TagDocumentNode:
		var seq xdm.Sequence
		doc := xdm.DocumentNode{Node: *n}
		doc.Children(d.tree, &seq)
		out.Children = d.nodes(&seq, depth)
	case format.TagElementNode:
		el := xdm.ElementNode{Node: *n}
		name := el.Name(d.tree)
		out.Name = d.qname(name)
		out.URI = d.lookup(name.URI)
		var seq xdm.Sequence
		if el.Namespaces(d.tree, &seq) {
			out.Namespaces = d.namespaces(&seq)
		}
		if el.Attributes(d.tree, &seq) {
			out.Attributes = d.nodes(&seq, depth)
		}
		if el.Children(d.tree, &seq) {
			out.Children = d.nodes(&seq, depth)
		}
	case format.TagAttributeNode:
		a := xdm.AttributeNode{Node: *n}
		name := a.Name(d.tree)
		out.Name = d.qname(name)
		out.URI = d.lookup(name.URI)
		a.Value(d.tree, &s)
		out.Value = ptr(s.String())
	case format.TagTextNode:
		t := xdm.TextNode{Node: *n}
		t.Value(d.tree, &s)
		out.Value = ptr(s.String())
	case format.TagCommentNode:
		c := xdm.CommentNode{Node: *n}
		c.Value(d.tree, &s)
		out.Value = ptr(s.String())
	case format.TagPINode:
		pi := xdm.PINode{Node: *n}
		pi.Target(d.tree, &s)
		out.Target = s.String()
		pi.Data(d.tree, &s)
		out.Value = ptr(s.String())
	}
	return out
}

func (d *treeDecoder) nodes(seq *xdm.Sequence, depth int) []node {
	var child xdm.Node
	out := make([]node, seq.EntryCount())
	for i := range out {
		seq.Entry(i, &child)
		out[i] = d.node(&child, depth+1)
	}
	return out
}

func (d *treeDecoder) namespaces(seq *xdm.Sequence) []namespace {
	var entry xdm.TaggedValue
	var code xdm.Int
	out := make([]namespace, 0, seq.EntryCount()/2)
	for i := 0; i+1 < seq.EntryCount(); i += 2 {
		seq.Entry(i, &entry)
		entry.Value(&code)
		prefix := d.lookup(code.Int())
		seq.Entry(i+1, &entry)
		entry.Value(&code)
		out = append(out, namespace{Prefix: prefix, URI: d.lookup(code.Int())})
	}
	return out
}

func ptr(s string) *string { return &s }

// lexical returns the XML lexical form of an atomic item.
func lexical(it item) string {
	switch v := it.Value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return ""
}
