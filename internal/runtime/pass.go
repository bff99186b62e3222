package runtime

import (
	"context"

	"github.com/google/uuid"
)

type passKey struct{}

// pass identifies one top-level evaluation of a tree.
type pass struct {
	id    string
	depth int
}

// enterPass returns a context for the node about to run.
// A context without a pass starts a new one at depth 0; otherwise the depth
// grows by one.
func enterPass(ctx context.Context) (context.Context, pass) {
	p, ok := ctx.Value(passKey{}).(pass)
	if ok {
		p.depth++
	} else {
		p = pass{id: uuid.NewString()}
	}
	return context.WithValue(ctx, passKey{}, p), p
}

// TickID returns the correlation ID of the pass running in ctx.
func TickID(ctx context.Context) (string, bool) {
	p, ok := ctx.Value(passKey{}).(pass)
	return p.id, ok
}

// Depth returns the depth of the node running in ctx (0 for the root).
func Depth(ctx context.Context) int {
	p, _ := ctx.Value(passKey{}).(pass)
	return p.depth
}
