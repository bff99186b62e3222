package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// ValidateTree walks the tree from root and reports structural problems that
// would otherwise only surface as tick errors: nil nodes, cycles, and
// composites with nothing to dispatch to.
// Shared subtrees are allowed.
func ValidateTree(root domain.Node) error {
	if domain.IsNil(root) {
		return fmt.Errorf("root: %w", domain.ErrNilNode)
	}

	var errors []string
	var walk func(node domain.Node, path string, ancestors []domain.Node)
	walk = func(node domain.Node, path string, ancestors []domain.Node) {
		if domain.IsNil(node) {
			errors = append(errors, fmt.Sprintf("%s: nil node", path))
			return
		}
		if onPath(node, ancestors) {
			errors = append(errors, fmt.Sprintf("%s: cycle back to %s", path, domain.LabelOf(node)))
			return
		}

		children := domain.ChildrenOf(node)
		switch domain.KindOf(node) {
		case domain.KindRandomSelector:
			if len(children) == 0 {
				errors = append(errors, fmt.Sprintf("%s: random selector has no children", path))
			}
		case domain.KindIndexSelector:
			if len(children) < 2 {
				errors = append(errors, fmt.Sprintf("%s: index selector has no children", path))
			}
		}

		ancestors = append(ancestors, node)
		for i, child := range children {
			walk(child, fmt.Sprintf("%s/%s[%d]", path, domain.KindOf(node), i), ancestors)
		}
	}
	walk(root, "root", nil)

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}

// onPath reports whether node is one of its own ancestors.
// Non-comparable node values cannot be identified and are never reported.
func onPath(node domain.Node, ancestors []domain.Node) bool {
	if !reflect.TypeOf(node).Comparable() {
		return false
	}
	for _, a := range ancestors {
		if reflect.TypeOf(a) == reflect.TypeOf(node) && a == node {
			return true
		}
	}
	return false
}
