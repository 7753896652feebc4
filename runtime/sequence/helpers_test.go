package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/xdmkit/internal/format"
	"github.com/joshuapare/xdmkit/runtime"
	"github.com/joshuapare/xdmkit/xdm"
	"github.com/joshuapare/xdmkit/xdm/builder"
)

// idTree encodes a one-element tree whose root carries local id id.
func idTree(t *testing.T, id int32, name string) []byte {
	t.Helper()
	var s builder.ValueStorage
	tb := builder.NewTreeBuilder(builder.TreeOptions{NodeIDs: true})
	require.NoError(t, tb.Build(&s, builder.Element(name, builder.Text(name)).WithID(id)))
	return s.CopyBytes()
}

// anonTree encodes a text node tree without local ids.
func anonTree(t *testing.T, text string) []byte {
	t.Helper()
	var s builder.ValueStorage
	tb := builder.NewTreeBuilder(builder.TreeOptions{})
	require.NoError(t, tb.Build(&s, builder.Text(text)))
	return s.CopyBytes()
}

func seqOf(t *testing.T, items ...[]byte) []byte {
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

func integer(v int64) []byte {
	var s builder.ValueStorage
	builder.PutInteger(&s, v)
	return s.CopyBytes()
}

// apply runs fn over left and right and returns a copy of the result.
func apply(fn runtime.TaggedValueFunc, left, right []byte) ([]byte, error) {
	args := make([]xdm.TaggedValue, 2)
	args[0].SetBytes(left)
	args[1].SetBytes(right)
	var res xdm.Pointable
	if err := fn.Evaluate(args, &res); err != nil {
		return nil, err
	}
	return append([]byte(nil), res.Bytes()...), nil
}

// entries splits an encoded result sequence into its entries.
func entries(t *testing.T, b []byte) [][]byte {
	t.Helper()
	require.NoError(t, xdm.Validate(b))
	var tv, e xdm.TaggedValue
	var seq xdm.Sequence
	tv.SetBytes(b)
	require.Equal(t, format.TagSequence, tv.Tag())
	tv.Value(&seq)
	out := make([][]byte, seq.EntryCount())
	for i := range out {
		seq.Entry(i, &e)
		out[i] = e.Bytes()
	}
	return out
}

// ids returns the root local ids of a result sequence, in order.
func ids(t *testing.T, b []byte) []int32 {
	t.Helper()
	var tv xdm.TaggedValue
	var tree xdm.NodeTree
	var node xdm.Node
	out := []int32{}
	for _, e := range entries(t, b) {
		tv.SetBytes(e)
		id, ok := xdm.RootLocalNodeID(&tv, &tree, &node)
		require.True(t, ok)
		out = append(out, id)
	}
	return out
}

func idTrees(t *testing.T, list ...int32) []byte {
	t.Helper()
	items := make([][]byte, len(list))
	for i, id := range list {
		items[i] = idTree(t, id, "n")
	}
	return seqOf(t, items...)
}
