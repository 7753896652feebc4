package sequence

import (
	"github.com/joshuapare/xdmkit/runtime"
	"github.com/joshuapare/xdmkit/xdm"
)

// NewUnionFactory returns a factory for op:union over two argument factories.
func NewUnionFactory(left, right runtime.ScalarEvaluatorFactory) *runtime.TaggedValueArgumentFactory {
	return &runtime.TaggedValueArgumentFactory{
		Name:             OpUnion,
		Args:             []runtime.ScalarEvaluatorFactory{left, right},
		Arity:            2,
		CheckedArguments: true,
		New: func(tc *runtime.TaskContext) runtime.TaggedValueFunc {
			return &Union{s: newScratch(tc.Logger, tc.Options.ValidateArguments)}
		},
	}
}

// Union is the body of op:union.
//
// Every left item is appended in order and recorded by id (when present) and
// by bytes. A right item is then appended unless it matches the left
// operand: by id when it carries one, by bytes otherwise. The result is the
// left items followed by the surviving right items, each group in its
// original order.
type Union struct {
	s *scratch
}

// NewUnion returns a Union with its own scratch state.
func NewUnion() *Union {
	return &Union{s: newScratch(runtime.DefaultOptions().Logger, true)}
}

// Evaluate writes the union of args[0] and args[1] into result.
func (u *Union) Evaluate(args []xdm.TaggedValue, result *xdm.Pointable) error {
	s := u.s
	s.reset()
	if err := s.bind(args); err != nil {
		return err
	}

	for i, n := 0, s.left.count(); i < n; i++ {
		if err := s.left.item(i, &s.item); err != nil {
			return err
		}
		s.index.add(s.identify(&s.item))
		if err := s.add(&s.item); err != nil {
			return err
		}
	}

	for i, n := 0, s.right.count(); i < n; i++ {
		if err := s.right.item(i, &s.item); err != nil {
			return err
		}
		if s.index.contains(s.identify(&s.item)) {
			continue
		}
		if err := s.add(&s.item); err != nil {
			return err
		}
	}

	return s.finish(OpUnion, result)
}
