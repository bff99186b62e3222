package tree

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
)

// ActionFunc is a caller-supplied leaf behavior.
// Booleans are read as directives by Selector, integers as positions by
// IndexSelector; any other value is opaque to composites.
type ActionFunc func(ctx context.Context, actor domain.Actor) (any, error)

// Action is a leaf node wrapping a single ActionFunc.
type Action struct {
	name string
	fn   ActionFunc
}

// NewAction wraps fn as a tree node.
func NewAction(fn ActionFunc) *Action {
	return &Action{fn: fn}
}

// NewNamedAction wraps fn as a tree node labeled name in logs and graphs.
func NewNamedAction(name string, fn ActionFunc) *Action {
	return &Action{name: name, fn: fn}
}

// Execute calls the wrapped function and returns its result unchanged.
func (a *Action) Execute(ctx context.Context, _ domain.Ticker, actor domain.Actor) (any, error) {
	if a == nil || a.fn == nil {
		return nil, domain.ErrNilNode
	}
	return a.fn(ctx, actor)
}

func (a *Action) Kind() string { return domain.KindAction }

func (a *Action) Label() string {
	if a == nil {
		return ""
	}
	return a.name
}
