package tree

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/arbor/pkg/domain"
)

// RandomOption configures the randomized composites.
type RandomOption func(*randomConfig)

type randomConfig struct {
	src Source
}

// WithSource sets the randomness source (default: DefaultSource).
// Seeded sources make trees reproducible in tests.
func WithSource(src Source) RandomOption {
	return func(c *randomConfig) {
		c.src = src
	}
}

func newRandomConfig(opts []RandomOption) randomConfig {
	cfg := randomConfig{src: DefaultSource}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// RandomSelector ticks exactly one uniformly chosen child per tick.
type RandomSelector struct {
	children []domain.Node
	cfg      randomConfig
}

// NewRandomSelector creates a random selector over children.
func NewRandomSelector(children []domain.Node, opts ...RandomOption) *RandomSelector {
	return &RandomSelector{
		children: children,
		cfg:      newRandomConfig(opts),
	}
}

// Execute draws an independent index and ticks that child.
func (s *RandomSelector) Execute(ctx context.Context, t domain.Ticker, actor domain.Actor) (any, error) {
	if len(s.children) == 0 {
		return nil, domain.ErrNoChildren
	}
	_, err := t.Tick(ctx, s.children[s.cfg.src.IntN(len(s.children))], actor)
	return nil, err
}

func (s *RandomSelector) Kind() string { return domain.KindRandomSelector }

func (s *RandomSelector) Children() []domain.Node { return slices.Clone(s.children) }

// RandomSequence ticks all of its children in a freshly shuffled order.
//
// The node owns its child slice. Ticking is a mutating operation: the shuffled
// order persists until the next tick and can be observed with Children.
type RandomSequence struct {
	mu       sync.Mutex
	children []domain.Node
	cfg      randomConfig
}

// NewRandomSequence creates a random sequence. The children slice is copied.
func NewRandomSequence(children []domain.Node, opts ...RandomOption) *RandomSequence {
	return &RandomSequence{
		children: slices.Clone(children),
		cfg:      newRandomConfig(opts),
	}
}

// Execute shuffles the children in place and ticks each one in the new order.
func (s *RandomSequence) Execute(ctx context.Context, t domain.Ticker, actor domain.Actor) (any, error) {
	s.mu.Lock()
	Shuffle(s.cfg.src, s.children)
	order := slices.Clone(s.children)
	s.mu.Unlock()

	return nil, tickAll(ctx, t, actor, order)
}

// Children returns a copy of the order used by the last tick
// (construction order before the first one).
func (s *RandomSequence) Children() []domain.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.children)
}

func (s *RandomSequence) Kind() string { return domain.KindRandomSequence }
