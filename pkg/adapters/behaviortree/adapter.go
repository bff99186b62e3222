// Package behaviortree bridges arbor trees and github.com/joeycumines/go-behaviortree.
//
// The two models disagree on what a tick returns: go-behaviortree nodes report
// a Status, arbor leaves return a value and composites read it as a directive.
// The adapters below translate at the boundary:
//
//	go-behaviortree -> arbor: Success = true, Failure = false, Running = false
//	arbor -> go-behaviortree: ticked = Success, skipped = Running, error = Failure
package behaviortree

import (
	"context"

	bt "github.com/joeycumines/go-behaviortree"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/tree"
)

// Leaf wraps a go-behaviortree node as an arbor leaf whose value is a bool,
// usable as a Selector condition. Running reads as "not yet successful".
// Errors from the node are returned unchanged.
func Leaf(name string, node bt.Node) *tree.Action {
	return tree.NewNamedAction(name, func(ctx context.Context, _ domain.Actor) (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if node == nil {
			return nil, domain.ErrNilNode
		}
		status, err := node.Tick()
		if err != nil {
			return nil, err
		}
		return status == bt.Success, nil
	})
}

// Node wraps an arbor tree as a go-behaviortree node. Each bt tick runs one
// pass of root against actor through t.
//
// A pass skipped by the gate reports Running, so go-behaviortree composites
// wait on an actor whose current action is still in progress.
func Node(ctx context.Context, t domain.Ticker, root domain.Node, actor domain.Actor) bt.Node {
	return bt.New(func([]bt.Node) (bt.Status, error) {
		res, err := t.Tick(ctx, root, actor)
		switch {
		case err != nil:
			return bt.Failure, err
		case res.Skipped:
			return bt.Running, nil
		default:
			return bt.Success, nil
		}
	})
}
