package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeEnter   EventType = "node_enter"
	EventNodeLeave   EventType = "node_leave"
	EventNodeSkipped EventType = "node_skipped"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	TickID    string    `json:"tick_id"` // Correlates every event of one top-level pass.
}

// NodeEvent represents the dispatch of a single node.
type NodeEvent struct {
	EventBase
	NodeKind  string        `json:"node_kind"`
	NodeLabel string        `json:"node_label"` // LabelOf the node; the kind when unnamed.
	Depth     int           `json:"depth"`
	Duration  time.Duration `json:"duration,omitempty"` // Set on leave.
	Err       error         `json:"-"`                  // Set on leave when Execute failed.
}

// LifecycleHooks defines callbacks for engine observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnNodeEnter   func(context.Context, *NodeEvent)
	OnNodeLeave   func(context.Context, *NodeEvent)
	OnNodeSkipped func(context.Context, *NodeEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnNodeEnter:   chain(h.OnNodeEnter, other.OnNodeEnter),
		OnNodeLeave:   chain(h.OnNodeLeave, other.OnNodeLeave),
		OnNodeSkipped: chain(h.OnNodeSkipped, other.OnNodeSkipped),
	}
}

func chain(a, b func(context.Context, *NodeEvent)) func(context.Context, *NodeEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *NodeEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
