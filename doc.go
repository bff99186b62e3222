/*
Package arbor is a minimal behavior-tree execution engine for autonomous actors
such as game AIs, bots and simulation agents.

A tree is assembled bottom-up from the node types of package tree and ticked
against a caller-owned actor. The engine is the single place where the actor's
gating signal is read: while a long-running action reports itself in progress,
every tick (and every child dispatch inside a tick) is skipped, until the action
marks itself complete.

# Concept

  - Leaf actions are plain Go functions supplied by the caller.
  - Composite nodes (Selector, IndexSelector, Sequence, RandomSelector,
    RandomSequence) route execution to their children through the engine.
  - The actor embeds domain.ActionState (or implements domain.Actor) to expose the
    tri-state "current action completed" signal.
  - Run schedules the tree on a fixed period and returns a handle to stop it.

# Usage

	package main

	import (
		"context"
		"fmt"
		"time"

		"github.com/aretw0/arbor"
		"github.com/aretw0/arbor/pkg/domain"
		"github.com/aretw0/arbor/pkg/tree"
	)

	type Guard struct {
		domain.ActionState
		HP int
	}

	func main() {
		alive := tree.NewAction(func(ctx context.Context, a domain.Actor) (any, error) {
			return a.(*Guard).HP > 0, nil
		})
		say := func(msg string) *tree.Action {
			return tree.NewAction(func(ctx context.Context, a domain.Actor) (any, error) {
				fmt.Println(msg)
				return nil, nil
			})
		}
		root := tree.NewSelector(alive, say("attack"), say("flee"))

		engine := arbor.New()
		guard := &Guard{HP: 10}

		// One synchronous pass.
		if _, err := engine.Tick(context.Background(), root, guard); err != nil {
			panic(err)
		}

		// Or tick every 500ms until stopped.
		h, err := engine.Run(context.Background(), root, guard, 500*time.Millisecond)
		if err != nil {
			panic(err)
		}
		defer h.Stop()
	}
*/
package arbor
