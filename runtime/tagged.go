package runtime

import (
	"fmt"

	"github.com/joshuapare/xdmkit/pkg/types"
	"github.com/joshuapare/xdmkit/xdm"
)

// TaggedValueFunc is the body of an evaluator whose arguments are resolved
// tagged values. Implementations hold the per-instance scratch state.
type TaggedValueFunc interface {
	Evaluate(args []xdm.TaggedValue, result *xdm.Pointable) error
}

// TaggedValueArgumentFactory builds evaluators that first resolve every
// argument evaluator against the frame, then hand the resulting tagged
// values to a TaggedValueFunc.
type TaggedValueArgumentFactory struct {
	// Name identifies the function in logs and errors.
	Name string
	// Args are the argument factories, one per parameter.
	Args []ScalarEvaluatorFactory
	// Arity is the required number of arguments. Zero accepts any count.
	Arity int
	// CheckedArguments marks functions that validate their own arguments,
	// after checking argument kinds. The generic validation pass is skipped
	// for them so kind errors keep their own codes.
	CheckedArguments bool
	// New creates the function body for one evaluator instance.
	New func(tc *TaskContext) TaggedValueFunc
}

func (f *TaggedValueArgumentFactory) CreateScalarEvaluator(tc *TaskContext) (ScalarEvaluator, error) {
	if f.Arity > 0 && len(f.Args) != f.Arity {
		return nil, fmt.Errorf("%s: got %d arguments, want %d", f.Name, len(f.Args), f.Arity)
	}
	args := make([]ScalarEvaluator, len(f.Args))
	for i, af := range f.Args {
		ev, err := af.CreateScalarEvaluator(tc)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", f.Name, i, err)
		}
		args[i] = ev
	}
	tc.Logger.Debug("created evaluator", "function", f.Name, "args", len(args))
	return &taggedValueArgumentEvaluator{
		name:     f.Name,
		args:     args,
		tvps:     make([]xdm.TaggedValue, len(args)),
		fn:       f.New(tc),
		validate: tc.Options.ValidateArguments && !f.CheckedArguments,
	}, nil
}

type taggedValueArgumentEvaluator struct {
	name     string
	args     []ScalarEvaluator
	tvps     []xdm.TaggedValue
	fn       TaggedValueFunc
	validate bool
}

func (e *taggedValueArgumentEvaluator) Evaluate(frame Frame, result *xdm.Pointable) error {
	for i, a := range e.args {
		if err := a.Evaluate(frame, &e.tvps[i].Pointable); err != nil {
			return err
		}
		if e.tvps[i].Length() == 0 {
			return types.NewError(types.SYSE0001, fmt.Sprintf("%s: argument %d is empty", e.name, i), nil)
		}
		if e.validate {
			if err := xdm.Validate(e.tvps[i].Bytes()); err != nil {
				return types.NewError(types.SYSE0001, fmt.Sprintf("%s: argument %d", e.name, i), err)
			}
		}
	}
	return e.fn.Evaluate(e.tvps, result)
}
