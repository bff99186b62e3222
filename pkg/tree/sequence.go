package tree

import (
	"context"
	"slices"

	"github.com/aretw0/arbor/pkg/domain"
)

// Sequence ticks a fixed, ordered list of children on every tick.
// It is not a short-circuiting AND: child values never stop the iteration.
type Sequence struct {
	children []domain.Node
}

// NewSequence creates an unconditional sequence.
func NewSequence(children ...domain.Node) *Sequence {
	return &Sequence{children: children}
}

// Execute ticks each child front-to-back, once each.
// A child error stops the pass and is returned unchanged.
func (s *Sequence) Execute(ctx context.Context, t domain.Ticker, actor domain.Actor) (any, error) {
	return nil, tickAll(ctx, t, actor, s.children)
}

func (s *Sequence) Kind() string { return domain.KindSequence }

func (s *Sequence) Children() []domain.Node { return slices.Clone(s.children) }

func tickAll(ctx context.Context, t domain.Ticker, actor domain.Actor, children []domain.Node) error {
	for _, child := range children {
		if _, err := t.Tick(ctx, child, actor); err != nil {
			return err
		}
	}
	return nil
}
