package sequence

import (
	"github.com/joshuapare/xdmkit/runtime"
	"github.com/joshuapare/xdmkit/xdm"
)

// NewExceptFactory returns a factory for op:except over two argument factories.
func NewExceptFactory(left, right runtime.ScalarEvaluatorFactory) *runtime.TaggedValueArgumentFactory {
	return &runtime.TaggedValueArgumentFactory{
		Name:             OpExcept,
		Args:             []runtime.ScalarEvaluatorFactory{left, right},
		Arity:            2,
		CheckedArguments: true,
		New: func(tc *runtime.TaskContext) runtime.TaggedValueFunc {
			return &Except{s: newScratch(tc.Logger, tc.Options.ValidateArguments)}
		},
	}
}

// Except is the body of op:except. The right operand is indexed, then left
// items that do not match it are appended in left order, each identity once.
type Except struct {
	s *scratch
}

// NewExcept returns an Except with its own scratch state.
func NewExcept() *Except {
	return &Except{s: newScratch(runtime.DefaultOptions().Logger, true)}
}

// Evaluate writes the nodes of args[0] not in args[1] into result.
func (e *Except) Evaluate(args []xdm.TaggedValue, result *xdm.Pointable) error {
	s := e.s
	s.reset()
	if err := s.bind(args); err != nil {
		return err
	}
	if err := s.indexAll(&s.right); err != nil {
		return err
	}
	if err := s.filter(&s.left, false); err != nil {
		return err
	}
	return s.finish(OpExcept, result)
}
