package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/xdmkit/internal/format"
	"github.com/joshuapare/xdmkit/xdm"
)

func encodeItems(t *testing.T, n int) [][]byte {
	t.Helper()
	items := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		var s ValueStorage
		switch i % 3 {
		case 0:
			PutInteger(&s, int64(i)*1000)
		case 1:
			require.NoError(t, PutString(&s, format.TagString, "item-"+string(rune('a'+i%26))))
		default:
			PutBoolean(&s, i%2 == 0)
		}
		items = append(items, s.CopyBytes())
	}
	return items
}

func TestSequenceBuilder_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 64} {
		items := encodeItems(t, n)

		var out ValueStorage
		var sb SequenceBuilder
		sb.Reset(&out)
		for _, it := range items {
			require.NoError(t, sb.AddBytes(it))
		}
		require.Equal(t, n, sb.Count())
		require.NoError(t, sb.Finish())
		require.NoError(t, xdm.Validate(out.Bytes()))

		var tv, entry xdm.TaggedValue
		var seq xdm.Sequence
		out.TaggedValue(&tv)
		require.Equal(t, format.TagSequence, tv.Tag())
		tv.Value(&seq)
		require.Equal(t, n, seq.EntryCount())
		for i := 0; i < n; i++ {
			seq.Entry(i, &entry)
			require.Equal(t, items[i], entry.Bytes(), "entry %d", i)
		}
		require.Equal(t, seq.Length(), seq.EncodedSize())
	}
}

func TestSequenceBuilder_EmptyLayout(t *testing.T) {
	var out ValueStorage
	var sb SequenceBuilder
	sb.Reset(&out)
	require.NoError(t, sb.Finish())
	require.Equal(t, []byte{byte(format.TagSequence), 0, 0, 0, 0}, out.Bytes())
}

func TestSequenceBuilder_SlotTable(t *testing.T) {
	var a, b ValueStorage
	PutByte(&a, 7)
	PutShort(&b, -2)

	var out ValueStorage
	var sb SequenceBuilder
	sb.Reset(&out)
	require.NoError(t, sb.AddBytes(a.Bytes()))
	require.NoError(t, sb.AddBytes(b.Bytes()))
	require.NoError(t, sb.FinishPayload())

	p := out.Bytes()
	require.Equal(t, uint32(2), format.ReadU32(p, 0))
	require.Equal(t, uint32(20), format.ReadU32(p, 4), "first entry follows the table")
	require.Equal(t, uint32(2), format.ReadU32(p, 8))
	require.Equal(t, uint32(22), format.ReadU32(p, 12))
	require.Equal(t, uint32(3), format.ReadU32(p, 16))
	require.Len(t, p, 25)
}

func TestSequenceBuilder_Deterministic(t *testing.T) {
	items := encodeItems(t, 5)
	build := func() []byte {
		var out ValueStorage
		var sb SequenceBuilder
		sb.Reset(&out)
		for _, it := range items {
			require.NoError(t, sb.AddBytes(it))
		}
		require.NoError(t, sb.Finish())
		return out.CopyBytes()
	}
	require.Equal(t, build(), build())
}

func TestSequenceBuilder_FinishedAndReset(t *testing.T) {
	var sb SequenceBuilder
	require.ErrorIs(t, sb.AddBytes([]byte{byte(format.TagBoolean), 1}), ErrNoTarget)

	var out ValueStorage
	sb.Reset(&out)
	require.NoError(t, sb.AddBytes([]byte{byte(format.TagBoolean), 1}))
	require.NoError(t, sb.Finish())
	require.ErrorIs(t, sb.AddBytes([]byte{byte(format.TagBoolean), 0}), ErrFinished)
	require.ErrorIs(t, sb.Finish(), ErrFinished)

	out.Reset()
	sb.Reset(&out)
	require.Zero(t, sb.Count(), "reset discards staged entries")
	require.NoError(t, sb.Finish())
	require.Equal(t, 5, out.Len())
}

func TestSequenceBuilder_AddItemFromView(t *testing.T) {
	var src ValueStorage
	require.NoError(t, PutString(&src, format.TagAnyURI, "urn:x"))
	var tv xdm.TaggedValue
	src.TaggedValue(&tv)

	var out ValueStorage
	var sb SequenceBuilder
	sb.Reset(&out)
	require.NoError(t, sb.AddItem(&tv))
	require.NoError(t, sb.Finish())

	var seq xdm.Sequence
	var entry xdm.TaggedValue
	var s xdm.String
	out.TaggedValue(&tv)
	tv.Value(&seq)
	seq.Entry(0, &entry)
	require.Equal(t, format.TagAnyURI, entry.Tag())
	entry.Value(&s)
	require.Equal(t, "urn:x", s.String())
}
