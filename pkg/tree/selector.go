package tree

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
)

// Selector branches on a boolean condition.
type Selector struct {
	condition domain.Node
	ifTrue    domain.Node
	ifFalse   domain.Node
}

// NewSelector creates a binary branch. The condition must produce a bool.
func NewSelector(condition, ifTrue, ifFalse domain.Node) *Selector {
	return &Selector{
		condition: condition,
		ifTrue:    ifTrue,
		ifFalse:   ifFalse,
	}
}

// Execute ticks the condition and then exactly one of the two branches.
// The branch's value is discarded.
func (s *Selector) Execute(ctx context.Context, t domain.Ticker, actor domain.Actor) (any, error) {
	res, err := t.Tick(ctx, s.condition, actor)
	if err != nil || res.Skipped {
		return nil, err
	}

	ok, err := res.Bool()
	if err != nil {
		return nil, err
	}

	branch := s.ifFalse
	if ok {
		branch = s.ifTrue
	}
	_, err = t.Tick(ctx, branch, actor)
	return nil, err
}

func (s *Selector) Kind() string { return domain.KindSelector }

// Children returns the condition followed by the true and false branches.
func (s *Selector) Children() []domain.Node {
	return []domain.Node{s.condition, s.ifTrue, s.ifFalse}
}

// IndexSelector dispatches to one of N children chosen by an integer condition.
// It replaces a chain of nested Selectors with a single lookup.
type IndexSelector struct {
	condition domain.Node
	children  []domain.Node
}

// NewIndexSelector creates an indexed dispatch. The condition must produce an
// integer in [0, len(children)); anything else fails the tick with a
// *domain.IndexError. Out-of-range positions are never clamped.
func NewIndexSelector(condition domain.Node, children ...domain.Node) *IndexSelector {
	return &IndexSelector{
		condition: condition,
		children:  children,
	}
}

// Execute ticks the condition and then the child at the resulting position.
func (s *IndexSelector) Execute(ctx context.Context, t domain.Ticker, actor domain.Actor) (any, error) {
	res, err := t.Tick(ctx, s.condition, actor)
	if err != nil || res.Skipped {
		return nil, err
	}

	idx, err := res.Index()
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(s.children) {
		return nil, &domain.IndexError{Index: idx, Len: len(s.children)}
	}

	_, err = t.Tick(ctx, s.children[idx], actor)
	return nil, err
}

func (s *IndexSelector) Kind() string { return domain.KindIndexSelector }

// Children returns the condition followed by the indexed children.
func (s *IndexSelector) Children() []domain.Node {
	return append([]domain.Node{s.condition}, s.children...)
}
