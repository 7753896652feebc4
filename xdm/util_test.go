package xdm

import (
	"github.com/joshuapare/xdmkit/internal/format"
)

// --- helpers that lay bytes out by hand, independent of the builder ---

func str(tag format.Tag, s string) []byte {
	b := make([]byte, 1+format.StringSize(len(s)))
	b[0] = byte(tag)
	format.PutU32(b, 1, uint32(len(s)))
	copy(b[5:], s)
	return b
}

func seqPayload(entries ...[]byte) []byte {
	hdr := format.SequenceHeaderSize(len(entries))
	b := make([]byte, hdr)
	format.PutU32(b, 0, uint32(len(entries)))
	off := hdr
	for i, e := range entries {
		format.PutU32(b, format.SeqTableOffset+i*format.SeqSlotSize, uint32(off))
		format.PutU32(b, format.SeqTableOffset+i*format.SeqSlotSize+format.SeqSlotLenOff, uint32(len(e)))
		b = append(b, e...)
		off += len(e)
	}
	return b
}

func tagged(tag format.Tag, payload []byte) []byte {
	return append([]byte{byte(tag)}, payload...)
}

func i32(v int32) []byte {
	b := make([]byte, 4)
	format.PutI32(b, 0, v)
	return b
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// textTree returns a node tree holding a single text node.
func textTree(id int32, withID bool, text string) []byte {
	header := byte(0)
	body := []byte{}
	if withID {
		header |= format.TreeNodeIDExists
		body = append(body, i32(id)...)
	}
	body = append(body, str(format.TagString, text)[1:]...)
	return cat([]byte{byte(format.TagNodeTree), header}, tagged(format.TagTextNode, body))
}
