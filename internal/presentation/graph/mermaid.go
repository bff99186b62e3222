package graph

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// Overlay contains dynamic state data to visualize on the graph.
type Overlay struct {
	// Holding marks the labels of actions currently holding the tree.
	Holding []string
}

// GenerateMermaid produces a Mermaid flowchart of the tree rooted at root.
// It applies semantic styling per node kind:
// - Action: [Rectangle]
// - Selector / IndexSelector: {Rhombus}
// - Sequence: [[Subroutine]]
// - RandomSelector / RandomSequence: {{Hexagon}}
// Edges out of selectors are labeled with the value that picks them.
// Shared subtrees are drawn once; a node reachable from itself is cut at the back edge.
func GenerateMermaid(root domain.Node, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	ids := make(map[domain.Node]string)
	next := 0
	var holding []string

	var visit func(node domain.Node) string
	visit = func(node domain.Node) string {
		if domain.IsNil(node) {
			return ""
		}
		dedupe := reflect.TypeOf(node).Comparable()
		if dedupe {
			if id, ok := ids[node]; ok {
				return id
			}
		}
		id := fmt.Sprintf("n%d", next)
		next++
		if dedupe {
			ids[node] = id
		}

		label := strings.ReplaceAll(domain.LabelOf(node), "\"", "'")
		opener, closer := shape(domain.KindOf(node))
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, label, closer))
		if overlay != nil && contains(overlay.Holding, domain.LabelOf(node)) {
			holding = append(holding, id)
		}

		kind := domain.KindOf(node)
		for i, child := range domain.ChildrenOf(node) {
			childID := visit(child)
			if childID == "" {
				continue
			}
			arrow := "-->"
			if edge := edgeLabel(kind, i); edge != "" {
				arrow = fmt.Sprintf("-- \"%s\" -->", edge)
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", id, arrow, childID))
		}
		return id
	}
	visit(root)

	if len(holding) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef holding fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, id := range holding {
			sb.WriteString(fmt.Sprintf("    class %s holding;\n", id))
		}
	}

	return sb.String()
}

func shape(kind string) (string, string) {
	switch kind {
	case domain.KindSelector, domain.KindIndexSelector:
		return "{", "}"
	case domain.KindSequence:
		return "[[", "]]"
	case domain.KindRandomSelector, domain.KindRandomSequence:
		return "{{", "}}"
	default:
		return "[", "]"
	}
}

// edgeLabel names the i-th child edge of a selector. Child 0 is the condition.
func edgeLabel(kind string, i int) string {
	switch kind {
	case domain.KindSelector:
		return [...]string{"cond", "true", "false"}[min(i, 2)]
	case domain.KindIndexSelector:
		if i == 0 {
			return "cond"
		}
		return fmt.Sprint(i - 1)
	}
	return ""
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
