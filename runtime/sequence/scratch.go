package sequence

import (
	"log/slog"

	"github.com/joshuapare/xdmkit/pkg/types"
	"github.com/joshuapare/xdmkit/xdm"
	"github.com/joshuapare/xdmkit/xdm/builder"
)

// scratch is the per-evaluator state reused across Evaluate calls. reset is
// called at the top of every call; nothing carries over between calls.
type scratch struct {
	logger *slog.Logger

	out builder.ValueStorage
	sb  builder.SequenceBuilder

	left, right operand
	item        xdm.TaggedValue
	tree        xdm.NodeTree
	node        xdm.Node

	index   membership
	emitted membership
}

func newScratch(logger *slog.Logger, validate bool) *scratch {
	return &scratch{
		logger:  logger,
		left:    operand{validate: validate},
		right:   operand{validate: validate},
		index:   newMembership(),
		emitted: newMembership(),
	}
}

func (s *scratch) reset() {
	s.out.Reset()
	s.sb.Reset(&s.out)
	s.index.reset()
	s.emitted.reset()
}

// bind checks both operands' top-level kinds before any item is read.
func (s *scratch) bind(args []xdm.TaggedValue) error {
	if err := s.left.reset("left", &args[0]); err != nil {
		return err
	}
	return s.right.reset("right", &args[1])
}

func (s *scratch) identify(item *xdm.TaggedValue) identity {
	id, ok := xdm.RootLocalNodeID(item, &s.tree, &s.node)
	return identity{id: id, hasID: ok, content: item.Bytes()}
}

// indexAll records every item of o in s.index.
func (s *scratch) indexAll(o *operand) error {
	for i, n := 0, o.count(); i < n; i++ {
		if err := o.item(i, &s.item); err != nil {
			return err
		}
		s.index.add(s.identify(&s.item))
	}
	return nil
}

// filter appends the items of o whose membership in s.index equals keep,
// skipping identities already emitted.
func (s *scratch) filter(o *operand, keep bool) error {
	for i, n := 0, o.count(); i < n; i++ {
		if err := o.item(i, &s.item); err != nil {
			return err
		}
		it := s.identify(&s.item)
		if s.index.contains(it) != keep || s.emitted.contains(it) {
			continue
		}
		s.emitted.add(it)
		if err := s.add(&s.item); err != nil {
			return err
		}
	}
	return nil
}

func (s *scratch) add(item *xdm.TaggedValue) error {
	if err := s.sb.AddItem(item); err != nil {
		return types.NewError(types.SYSE0001, "append result item", err)
	}
	return nil
}

// finish writes the result sequence and anchors result over it.
func (s *scratch) finish(op string, result *xdm.Pointable) error {
	if err := s.sb.Finish(); err != nil {
		return types.NewError(types.SYSE0001, "finish result", err)
	}
	s.logger.Debug("set operation done", "op", op,
		"left", s.left.count(), "right", s.right.count(), "out", s.sb.Count())
	s.out.Set(result)
	return nil
}
