package tree_test

import (
	"context"

	"github.com/aretw0/arbor/internal/runtime"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/tree"
)

// guard is the test actor.
type guard struct {
	domain.ActionState
	HP  int
	Log []string
}

// record returns a leaf appending id to the actor's log and returning value.
func record(id string, value any) *tree.Action {
	return tree.NewAction(func(_ context.Context, a domain.Actor) (any, error) {
		g := a.(*guard)
		g.Log = append(g.Log, id)
		return value, nil
	})
}

// constant returns a leaf that only yields value.
func constant(value any) *tree.Action {
	return tree.NewAction(func(context.Context, domain.Actor) (any, error) {
		return value, nil
	})
}

func tick(node domain.Node, a domain.Actor) (domain.Result, error) {
	return runtime.NewEngine().Tick(context.Background(), node, a)
}

func ids(nodes []domain.Node, names map[domain.Node]string) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = names[n]
	}
	return out
}
