package sequence

import (
	"fmt"

	"github.com/joshuapare/xdmkit/internal/format"
	"github.com/joshuapare/xdmkit/pkg/types"
	"github.com/joshuapare/xdmkit/xdm"
)

// operand iterates a set operator argument as a list of node trees. A bare
// node tree is a one-item list.
//
// With validate set, payloads are checked only after their kind is accepted,
// so a wrong kind reports its own code even when the bytes are also bad.
type operand struct {
	name     string
	arg      *xdm.TaggedValue
	seq      xdm.Sequence
	single   bool
	validate bool
}

// reset binds the operand to arg and checks its top-level kind.
func (o *operand) reset(name string, arg *xdm.TaggedValue) error {
	o.name = name
	o.arg = arg
	if arg.Length() == 0 {
		return types.NewError(types.SYSE0001, fmt.Sprintf("%s operand is empty", name), nil)
	}
	switch arg.Tag() {
	case format.TagNodeTree:
		o.single = true
		if o.validate {
			if err := xdm.Validate(arg.Bytes()); err != nil {
				return types.NewError(types.SYSE0001, fmt.Sprintf("%s operand", name), err)
			}
		}
	case format.TagSequence:
		o.single = false
		if o.validate {
			if err := xdm.ValidateSequenceLayout(arg.Bytes()); err != nil {
				return types.NewError(types.SYSE0001, fmt.Sprintf("%s operand", name), err)
			}
		}
		arg.Value(&o.seq)
	default:
		return types.NewError(types.FORG0006,
			fmt.Sprintf("%s operand is %s, want a node or a sequence of nodes", name, arg.Tag()), nil)
	}
	return nil
}

func (o *operand) count() int {
	if o.single {
		return 1
	}
	return o.seq.EntryCount()
}

// item anchors dst over item i and checks that it is a node tree.
func (o *operand) item(i int, dst *xdm.TaggedValue) error {
	if o.single {
		dst.SetPointable(&o.arg.Pointable)
		return nil
	}
	o.seq.Entry(i, dst)
	if tag := dst.Tag(); tag != format.TagNodeTree {
		return types.NewError(types.XPTY0004,
			fmt.Sprintf("%s operand entry %d is %s, want a node", o.name, i, tag), nil)
	}
	if o.validate {
		if err := xdm.Validate(dst.Bytes()); err != nil {
			return types.NewError(types.SYSE0001, fmt.Sprintf("%s operand entry %d", o.name, i), err)
		}
	}
	return nil
}

// identity is what the set operators compare: the root local node id when
// the tree carries ids, and always the encoded bytes.
type identity struct {
	id      int32
	hasID   bool
	content []byte
}
