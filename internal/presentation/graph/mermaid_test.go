package graph_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/tree"
	"github.com/stretchr/testify/assert"
)

func named(name string) *tree.Action {
	return tree.NewNamedAction(name, func(context.Context, domain.Actor) (any, error) { return nil, nil })
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		root     domain.Node
		overlay  *graph.Overlay
		contains []string
		absent   []string
	}{
		{
			name: "Action Shape",
			root: named("attack"),
			contains: []string{
				"graph TD",
				"n0[\"attack\"]",
			},
		},
		{
			name: "Unnamed Action Falls Back To Kind",
			root: tree.NewAction(nil),
			contains: []string{
				"n0[\"action\"]",
			},
		},
		{
			name: "Selector Edges",
			root: tree.NewSelector(named("enemy?"), named("attack"), named("flee")),
			contains: []string{
				"n0{\"selector\"}",
				"n0 -- \"cond\" --> n1",
				"n0 -- \"true\" --> n2",
				"n0 -- \"false\" --> n3",
			},
		},
		{
			name: "Index Selector Edges",
			root: tree.NewIndexSelector(named("threat"), named("calm"), named("fight")),
			contains: []string{
				"n0{\"index_selector\"}",
				"n0 -- \"cond\" --> n1",
				"n0 -- \"0\" --> n2",
				"n0 -- \"1\" --> n3",
			},
		},
		{
			name: "Sequence And Random Shapes",
			root: tree.NewSequence(
				tree.NewRandomSelector([]domain.Node{named("a")}),
				tree.NewRandomSequence([]domain.Node{named("b")}),
			),
			contains: []string{
				"n0[[\"sequence\"]]",
				"n1{{\"random_selector\"}}",
				"n3{{\"random_sequence\"}}",
				"n0 --> n1",
				"n1 --> n2",
			},
		},
		{
			name: "Label Quotes Escaped",
			root: named(`say "hi"`),
			contains: []string{
				"n0[\"say 'hi'\"]",
			},
		},
		{
			name:    "Overlay Styles",
			root:    tree.NewSequence(named("patrol"), named("idle")),
			overlay: &graph.Overlay{Holding: []string{"patrol"}},
			contains: []string{
				"classDef holding",
				"class n1 holding;",
			},
			absent: []string{
				"class n2 holding;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.root, tt.overlay)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.absent {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestGenerateMermaid_SharedSubtreeDrawnOnce(t *testing.T) {
	shared := named("shared")
	got := graph.GenerateMermaid(tree.NewSequence(shared, shared), nil)

	assert.Equal(t, 1, strings.Count(got, "[\"shared\"]"))
	assert.Equal(t, 2, strings.Count(got, "--> n1"))
}
