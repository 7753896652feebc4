package sequence

import (
	"github.com/joshuapare/xdmkit/runtime"
	"github.com/joshuapare/xdmkit/xdm"
)

// NewIntersectFactory returns a factory for op:intersect over two argument factories.
func NewIntersectFactory(left, right runtime.ScalarEvaluatorFactory) *runtime.TaggedValueArgumentFactory {
	return &runtime.TaggedValueArgumentFactory{
		Name:             OpIntersect,
		Args:             []runtime.ScalarEvaluatorFactory{left, right},
		Arity:            2,
		CheckedArguments: true,
		New: func(tc *runtime.TaskContext) runtime.TaggedValueFunc {
			return &Intersect{s: newScratch(tc.Logger, tc.Options.ValidateArguments)}
		},
	}
}

// Intersect is the body of op:intersect. The right operand is indexed, then
// left items that match it are appended in left order, each identity once.
type Intersect struct {
	s *scratch
}

// NewIntersect returns an Intersect with its own scratch state.
func NewIntersect() *Intersect {
	return &Intersect{s: newScratch(runtime.DefaultOptions().Logger, true)}
}

// Evaluate writes the nodes of args[0] also in args[1] into result.
func (x *Intersect) Evaluate(args []xdm.TaggedValue, result *xdm.Pointable) error {
	s := x.s
	s.reset()
	if err := s.bind(args); err != nil {
		return err
	}
	if err := s.indexAll(&s.right); err != nil {
		return err
	}
	if err := s.filter(&s.left, true); err != nil {
		return err
	}
	return s.finish(OpIntersect, result)
}
