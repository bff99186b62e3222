/*
Package domain contains the core contracts of the Arbor behavior-tree engine.

It defines what a tree node is, how an actor exposes its gating signal, and the
tagged result produced by a single tick. The package is kept pure and free of
I/O, logging or scheduling concerns, following the same Hexagonal Architecture
principles as the rest of the module.

# Key Entities

  - Node: anything that can be executed against an actor (leaf or composite).
  - Ticker: the tick engine that gates and dispatches nodes. Composites tick their
    children through it instead of calling Execute directly.
  - Actor: caller-owned state exposing the tri-state "current action completed" signal.
  - ActionState: an embeddable, goroutine-safe implementation of that signal.
  - Result: the outcome of one Tick (a value, or a skip when the gate was closed).
  - LifecycleHooks: callbacks for observability (logging, metrics, tracing).
*/
package domain
