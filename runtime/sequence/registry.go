package sequence

import (
	"fmt"
	"sort"

	"github.com/joshuapare/xdmkit/runtime"
)

// Operator names.
const (
	OpUnion     = "op:union"
	OpIntersect = "op:intersect"
	OpExcept    = "op:except"
)

type factoryFunc func(left, right runtime.ScalarEvaluatorFactory) *runtime.TaggedValueArgumentFactory

var registry = map[string]factoryFunc{
	OpUnion:     NewUnionFactory,
	"union":     NewUnionFactory,
	"|":         NewUnionFactory,
	OpIntersect: NewIntersectFactory,
	"intersect": NewIntersectFactory,
	OpExcept:    NewExceptFactory,
	"except":    NewExceptFactory,
}

// NewFactory returns the factory for the named set operator.
func NewFactory(name string, args ...runtime.ScalarEvaluatorFactory) (runtime.ScalarEvaluatorFactory, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("sequence: unknown operator %q", name)
	}
	if len(args) != 2 {
		return nil, fmt.Errorf("sequence: %s takes 2 arguments, got %d", name, len(args))
	}
	return fn(args[0], args[1]), nil
}

// Operators lists the accepted operator names.
func Operators() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
