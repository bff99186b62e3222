package domain

import (
	"context"
	"fmt"
	"reflect"
)

// Node is a behavior tree node: a leaf action or a composite.
//
// Execute runs the node once against the actor. Composite nodes MUST dispatch
// their children through t.Tick and never call a child's Execute directly, so
// that the gating signal is re-checked at every depth of the tree.
type Node interface {
	Execute(ctx context.Context, t Ticker, actor Actor) (any, error)
}

// Ticker is the tick engine. It reads the actor's gating signal and, when
// ticking is allowed, executes the node.
type Ticker interface {
	Tick(ctx context.Context, node Node, actor Actor) (Result, error)
}

// Kinded is implemented by nodes that report a stable kind name.
type Kinded interface {
	Kind() string
}

// IsNil reports whether node is nil or a nil pointer (or other nil reference)
// wrapped in the interface.
func IsNil(node Node) bool {
	if node == nil {
		return true
	}
	v := reflect.ValueOf(node)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// KindOf returns the kind name of a node.
// Nodes not implementing Kinded are described by their Go type.
func KindOf(node Node) string {
	if k, ok := node.(Kinded); ok {
		return k.Kind()
	}
	return fmt.Sprintf("%T", node)
}

// Parent is implemented by composites to expose their children for
// inspection. Conditions come first, in the order the node ticks them.
type Parent interface {
	Children() []Node
}

// Labeled is implemented by nodes carrying a human-readable name.
type Labeled interface {
	Label() string
}

// LabelOf returns the node's label, or its kind when it has none.
func LabelOf(node Node) string {
	if IsNil(node) {
		return "<nil>"
	}
	if l, ok := node.(Labeled); ok && l.Label() != "" {
		return l.Label()
	}
	return KindOf(node)
}

// ChildrenOf returns the children of a composite, or nil for a leaf.
func ChildrenOf(node Node) []Node {
	if IsNil(node) {
		return nil
	}
	if p, ok := node.(Parent); ok {
		return p.Children()
	}
	return nil
}
