/*
Package tree provides the built-in behavior tree node types.

Trees are assembled bottom-up from constructors and then ticked by an engine
implementing domain.Ticker:

	attack := tree.NewAction(func(ctx context.Context, a domain.Actor) (any, error) {
		a.(*Guard).Attack()
		return nil, nil
	})
	flee := tree.NewAction(func(ctx context.Context, a domain.Actor) (any, error) {
		a.(*Guard).Flee()
		return nil, nil
	})
	alive := tree.NewAction(func(ctx context.Context, a domain.Actor) (any, error) {
		return a.(*Guard).HP > 0, nil
	})

	root := tree.NewSelector(alive, attack, flee)

# Node Types

  - Action: wraps a caller-supplied function. Its return value flows back to the caller.
  - Selector: ticks a true or false branch depending on a boolean condition.
  - IndexSelector: ticks the child at the position produced by an integer condition.
  - Sequence: ticks every child in order, ignoring their results.
  - RandomSelector: ticks one uniformly random child.
  - RandomSequence: shuffles its children in place, then ticks all of them.

Composite nodes return no value. Children are always dispatched through the
engine, so the actor's gating signal is checked again before each of them.
*/
package tree
