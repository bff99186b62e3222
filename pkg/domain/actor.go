package domain

import "sync/atomic"

// Completion is the tri-state "current action completed" signal of an actor.
type Completion int32

const (
	// Unset means no action ever reported; ticking is allowed.
	Unset Completion = iota
	// Completed means the last long-running action finished; ticking is allowed.
	Completed
	// InProgress means a long-running action holds the tree; ticks are skipped.
	InProgress
)

// AllowsTick reports whether the engine may tick while the signal has this value.
func (c Completion) AllowsTick() bool {
	return c != InProgress
}

func (c Completion) String() string {
	switch c {
	case Unset:
		return "unset"
	case Completed:
		return "completed"
	case InProgress:
		return "in_progress"
	default:
		return "unknown"
	}
}

// Actor is the caller-defined state object a tree is ticked against.
// The engine only reads the completion signal; it never writes it.
type Actor interface {
	CompletedCurrentAction() Completion
}

// ActionTracker is an Actor whose completion signal can be written by leaf actions.
type ActionTracker interface {
	Actor
	SetCompletedCurrentAction(Completion)
}

// ActionState is an embeddable implementation of ActionTracker.
// The zero value is Unset. Safe for concurrent use, so an action running in
// the background may complete itself from another goroutine.
type ActionState struct {
	state atomic.Int32
}

// CompletedCurrentAction returns the current signal.
func (s *ActionState) CompletedCurrentAction() Completion {
	return Completion(s.state.Load())
}

// SetCompletedCurrentAction overwrites the signal.
func (s *ActionState) SetCompletedCurrentAction(c Completion) {
	s.state.Store(int32(c))
}

// Hold marks the current action as in progress, pausing the tree.
func (s *ActionState) Hold() {
	s.SetCompletedCurrentAction(InProgress)
}

// Complete marks the current action as finished, resuming the tree.
func (s *ActionState) Complete() {
	s.SetCompletedCurrentAction(Completed)
}

// Reset clears the signal back to Unset.
func (s *ActionState) Reset() {
	s.SetCompletedCurrentAction(Unset)
}
