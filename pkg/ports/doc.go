/*
Package ports defines the driven ports (interfaces) of the Arbor engine.

These interfaces decouple the scheduling logic from external implementations.

# Key Interfaces

  - DistributedLocker: guarantees that a single driver ticks a given tree,
    even when several processes share the same deployment.
*/
package ports
