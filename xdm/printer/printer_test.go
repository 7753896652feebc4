package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/xdmkit/internal/format"
	"github.com/joshuapare/xdmkit/xdm/builder"
)

func encodeTree(t *testing.T, ids bool, root *builder.Node) []byte {
	t.Helper()
	var s builder.ValueStorage
	require.NoError(t, builder.NewTreeBuilder(builder.TreeOptions{NodeIDs: ids}).Build(&s, root))
	return s.CopyBytes()
}

func encodeSeq(t *testing.T, items ...[]byte) []byte {
	t.Helper()
	var s builder.ValueStorage
	var sb builder.SequenceBuilder
	sb.Reset(&s)
	for _, it := range items {
		require.NoError(t, sb.AddBytes(it))
	}
	require.NoError(t, sb.Finish())
	return s.CopyBytes()
}

func render(t *testing.T, opts Options, b []byte) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, New(&buf, opts).Print(b))
	return buf.String()
}

func TestPrinter_TextAtomic(t *testing.T) {
	var s builder.ValueStorage
	builder.PutInteger(&s, 42)
	require.Equal(t, "xs:integer 42\n", render(t, DefaultOptions(), s.CopyBytes()))

	s.Reset()
	builder.PutDecimal(&s, 2, -1234)
	require.Equal(t, "xs:decimal -12.34\n", render(t, DefaultOptions(), s.CopyBytes()))

	s.Reset()
	require.NoError(t, builder.PutString(&s, format.TagString, `a"b`))
	require.Equal(t, "xs:string \"a\\\"b\"\n", render(t, DefaultOptions(), s.CopyBytes()))
}

func TestPrinter_TextTree(t *testing.T) {
	tree := encodeTree(t, true, builder.Element("a", builder.Text("hi").WithID(2)).WithID(1))
	got := render(t, DefaultOptions(), encodeSeq(t, tree))
	require.Equal(t, "sequence [1]\n  node-tree\n    element <a> #1\n      text \"hi\" #2\n", got)

	opts := DefaultOptions()
	opts.ShowNodeIDs = false
	got = render(t, opts, tree)
	require.Equal(t, "node-tree\n  element <a>\n    text \"hi\"\n", got)
}

func TestPrinter_TextTruncation(t *testing.T) {
	var s builder.ValueStorage
	require.NoError(t, builder.PutString(&s, format.TagString, "abcdef"))
	opts := DefaultOptions()
	opts.MaxStringBytes = 3
	require.Equal(t, "xs:string \"abc\"... (6 bytes)\n", render(t, opts, s.CopyBytes()))

	nested := encodeSeq(t, encodeSeq(t))
	opts = DefaultOptions()
	opts.MaxDepth = 1
	require.Equal(t, "sequence [1]\n  sequence ...\n", render(t, opts, nested))
	require.Equal(t, "sequence [1]\n  sequence [0]\n", render(t, DefaultOptions(), nested))
}

func TestPrinter_XML(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatXML

	tree := encodeTree(t, false, builder.Element("a", builder.Text("x<y")).
		WithAttributes(builder.Attribute("k", "1")))
	require.Equal(t, "<a k=\"1\">x&lt;y</a>\n", render(t, opts, tree))

	doc := encodeTree(t, true, builder.Document(
		builder.Element("r", builder.Element("c"), builder.Comment("n"), builder.PI("go", "fmt")).
			WithNamespaces(builder.Namespace{Prefix: "p", URI: "urn:p"}),
	))
	require.Equal(t,
		"<r xmlns:p=\"urn:p\">\n  <c/>\n  <!--n-->\n  <?go fmt?>\n</r>\n",
		render(t, opts, doc))

	var s builder.ValueStorage
	builder.PutBoolean(&s, true)
	require.Equal(t, "true\n", render(t, opts, s.CopyBytes()))
}

func TestPrinter_JSON(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatJSON

	root := &builder.Node{
		Kind: format.TagElementNode,
		Name: builder.QName{Prefix: "p", URI: "urn:p", Local: "a"},
	}
	tree := encodeTree(t, true, root.WithID(9))
	var s builder.ValueStorage
	builder.PutInt(&s, 7)

	out := render(t, opts, encodeSeq(t, tree, s.CopyBytes()))

	var got struct {
		Tag   string `json:"tag"`
		Items []struct {
			Tag   string `json:"tag"`
			Value any    `json:"value"`
			Tree  *struct {
				Kind string `json:"kind"`
				ID   int32  `json:"id"`
				Name string `json:"name"`
				URI  string `json:"uri"`
			} `json:"tree"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "sequence", got.Tag)
	require.Len(t, got.Items, 2)
	require.NotNil(t, got.Items[0].Tree)
	require.Equal(t, "element", got.Items[0].Tree.Kind)
	require.Equal(t, int32(9), got.Items[0].Tree.ID)
	require.Equal(t, "p:a", got.Items[0].Tree.Name)
	require.Equal(t, "urn:p", got.Items[0].Tree.URI)
	require.Equal(t, "xs:int", got.Items[1].Tag)
	require.EqualValues(t, 7, got.Items[1].Value)
}

func TestPrinter_RejectsMalformed(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf, DefaultOptions()).Print([]byte{byte(format.TagString), 0, 0})
	require.ErrorIs(t, err, format.ErrTruncated)
	require.Empty(t, buf.String())
}
