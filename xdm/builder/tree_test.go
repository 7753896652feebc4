package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/xdmkit/internal/format"
	"github.com/joshuapare/xdmkit/xdm"
)

func buildTree(t *testing.T, root *Node, opts TreeOptions) *ValueStorage {
	t.Helper()
	var s ValueStorage
	require.NoError(t, NewTreeBuilder(opts).Build(&s, root))
	require.NoError(t, xdm.Validate(s.Bytes()))
	return &s
}

func TestTree_DocumentContentOffset(t *testing.T) {
	for _, ids := range []bool{false, true} {
		root := Document(Text("a"), Comment("b")).WithID(9)
		s := buildTree(t, root, TreeOptions{NodeIDs: ids})

		var tv xdm.TaggedValue
		var tree xdm.NodeTree
		var node xdm.Node
		s.TaggedValue(&tv)
		require.Equal(t, format.TagNodeTree, tv.Tag())
		tv.Value(&tree)
		require.Equal(t, ids, tree.NodeIDExists())
		require.False(t, tree.DictionaryExists(), "no names, no dictionary")

		tree.RootNode(&node)
		require.Equal(t, format.TagDocumentNode, node.Kind())
		bodyStart := node.StartOffset() + format.TagSize
		if ids {
			require.Equal(t, bodyStart+format.LocalNodeIDSize, node.ContentOffset(&tree))
			id, ok := node.LocalNodeID(&tree)
			require.True(t, ok)
			require.Equal(t, int32(9), id)
		} else {
			require.Equal(t, bodyStart, node.ContentOffset(&tree))
			_, ok := node.LocalNodeID(&tree)
			require.False(t, ok)
		}

		doc := xdm.DocumentNode{Node: node}
		var children xdm.Sequence
		doc.Children(&tree, &children)
		require.Equal(t, 2, children.EntryCount())
		require.Equal(t, children.Length(), children.EncodedSize())
	}
}

func TestTree_ElementChunksAndNames(t *testing.T) {
	root := Element("book",
		Element("title", Text("Dune")),
		Comment("first edition"),
		PI("xml-stylesheet", "href=a.css"),
	).WithAttributes(Attribute("isbn", "0441013597"), Attribute("lang", "en")).
		WithNamespaces(Namespace{Prefix: "b", URI: "urn:books"})
	root.Name.Prefix = "b"
	root.Name.URI = "urn:books"
	AssignIDs(root, 1)

	s := buildTree(t, root, TreeOptions{NodeIDs: true})

	var tv xdm.TaggedValue
	var tree xdm.NodeTree
	var dict xdm.Dictionary
	s.TaggedValue(&tv)
	tv.Value(&tree)
	require.True(t, tree.Dictionary(&dict))

	id, ok := tree.RootNodeID()
	require.True(t, ok)
	require.Equal(t, int32(1), id)

	var el xdm.ElementNode
	tree.RootNode(&el)
	require.Equal(t, format.TagElementNode, el.Kind())
	name := el.Name(&tree)
	assert.Equal(t, "book", dict.LookupString(name.Local))
	assert.Equal(t, "b", dict.LookupString(name.Prefix))
	assert.Equal(t, "urn:books", dict.LookupString(name.URI))
	assert.Equal(t, format.ElementHasNamespaces|format.ElementHasAttributes|format.ElementHasChildren, el.Flags(&tree))

	var seq xdm.Sequence
	require.True(t, el.Namespaces(&tree, &seq))
	require.Equal(t, 2, seq.EntryCount())

	require.True(t, el.Attributes(&tree, &seq))
	require.Equal(t, 2, seq.EntryCount())
	var attr xdm.AttributeNode
	var str xdm.String
	seq.Entry(1, &attr)
	assert.Equal(t, "lang", dict.LookupString(attr.Name(&tree).Local))
	attr.Value(&tree, &str)
	assert.Equal(t, "en", str.String())
	attrID, _ := attr.LocalNodeID(&tree)
	assert.Equal(t, int32(3), attrID)

	require.True(t, el.Children(&tree, &seq))
	require.Equal(t, 3, seq.EntryCount())

	var title xdm.ElementNode
	seq.Entry(0, &title)
	assert.Equal(t, "title", dict.LookupString(title.Name(&tree).Local))
	var inner xdm.Sequence
	require.True(t, title.Children(&tree, &inner))
	var text xdm.TextNode
	inner.Entry(0, &text)
	text.Value(&tree, &str)
	assert.Equal(t, "Dune", str.String())
	require.False(t, title.Attributes(&tree, &inner))

	var comment xdm.CommentNode
	seq.Entry(1, &comment)
	comment.Value(&tree, &str)
	assert.Equal(t, "first edition", str.String())

	var pi xdm.PINode
	seq.Entry(2, &pi)
	pi.Target(&tree, &str)
	assert.Equal(t, "xml-stylesheet", str.String())
	pi.Data(&tree, &str)
	assert.Equal(t, "href=a.css", str.String())
}

func TestTree_RejectsBadStructure(t *testing.T) {
	tests := []struct {
		name string
		root *Node
	}{
		{"nil root", nil},
		{"not a node", &Node{Kind: format.TagString}},
		{"attribute as child", Element("a", Attribute("x", "1"))},
		{"document as child", Document(Document())},
		{"text as attribute", Element("a").WithAttributes(Text("x"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s ValueStorage
			err := NewTreeBuilder(TreeOptions{}).Build(&s, tt.root)
			require.ErrorIs(t, err, ErrInvalidNode)
			require.Zero(t, s.Len())
		})
	}
}

func TestTree_BuilderReuseResetsDictionary(t *testing.T) {
	tb := NewTreeBuilder(TreeOptions{})
	var a, b ValueStorage
	require.NoError(t, tb.Build(&a, Element("first")))
	require.NoError(t, tb.Build(&b, Element("second")))

	var tv xdm.TaggedValue
	var tree xdm.NodeTree
	var dict xdm.Dictionary
	b.TaggedValue(&tv)
	tv.Value(&tree)
	require.True(t, tree.Dictionary(&dict))
	require.Equal(t, 1, dict.EntryCount())
	require.Equal(t, "second", dict.LookupString(0))
}

func TestAssignIDs_DocumentOrder(t *testing.T) {
	root := Document(Element("a", Text("t")).WithAttributes(Attribute("x", "1")), Comment("c"))
	next := AssignIDs(root, 10)
	require.Equal(t, int32(15), next)
	require.Equal(t, int32(11), root.Children[0].ID)
	require.Equal(t, int32(12), root.Children[0].Attributes[0].ID)
	require.Equal(t, int32(13), root.Children[0].Children[0].ID)
	require.Equal(t, int32(14), root.Children[1].ID)
}
