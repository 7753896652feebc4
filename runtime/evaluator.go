package runtime

import (
	"fmt"

	"github.com/joshuapare/xdmkit/pkg/types"
	"github.com/joshuapare/xdmkit/xdm"
)

// Frame is one input row: an ordered set of encoded tagged values.
type Frame interface {
	FieldCount() int
	Field(i int) []byte
}

// Tuple is a Frame over in-memory fields.
type Tuple [][]byte

func (t Tuple) FieldCount() int { return len(t) }
func (t Tuple) Field(i int) []byte { return t[i] }

// ScalarEvaluator computes one tagged value per frame. result is re-anchored
// over the output, which stays valid until the next Evaluate call on the same
// evaluator. On error result is left untouched.
type ScalarEvaluator interface {
	Evaluate(frame Frame, result *xdm.Pointable) error
}

// ScalarEvaluatorFactory creates per-partition evaluator instances.
type ScalarEvaluatorFactory interface {
	CreateScalarEvaluator(tc *TaskContext) (ScalarEvaluator, error)
}

// ColumnAccessFactory yields the frame field at Index.
type ColumnAccessFactory struct {
	Index int
}

func (f ColumnAccessFactory) CreateScalarEvaluator(*TaskContext) (ScalarEvaluator, error) {
	if f.Index < 0 {
		return nil, fmt.Errorf("column access: negative index %d", f.Index)
	}
	return columnAccess(f.Index), nil
}

type columnAccess int

func (c columnAccess) Evaluate(frame Frame, result *xdm.Pointable) error {
	i := int(c)
	if i >= frame.FieldCount() {
		return types.NewError(types.SYSE0001,
			fmt.Sprintf("column %d out of range (frame has %d fields)", i, frame.FieldCount()), nil)
	}
	result.SetBytes(frame.Field(i))
	return nil
}

// ConstantFactory yields the same encoded value for every frame.
type ConstantFactory struct {
	Value []byte
}

func (f ConstantFactory) CreateScalarEvaluator(*TaskContext) (ScalarEvaluator, error) {
	return constant(f.Value), nil
}

type constant []byte

func (c constant) Evaluate(_ Frame, result *xdm.Pointable) error {
	result.SetBytes(c)
	return nil
}
