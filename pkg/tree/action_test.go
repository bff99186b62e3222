package tree_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAction_ReturnsValueUnchanged(t *testing.T) {
	g := &guard{}
	res, err := tick(record("a", "payload"), g)
	require.NoError(t, err)
	assert.Equal(t, "payload", res.Value)
	assert.Equal(t, []string{"a"}, g.Log)
}

func TestAction_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	node := tree.NewAction(func(context.Context, domain.Actor) (any, error) {
		return "partial", boom
	})

	res, err := tick(node, &guard{})
	assert.Same(t, boom, err)
	assert.Equal(t, "partial", res.Value)
}

func TestAction_NilFunc(t *testing.T) {
	_, err := tick(tree.NewAction(nil), &guard{})
	assert.ErrorIs(t, err, domain.ErrNilNode)
}

func TestNamedAction_Label(t *testing.T) {
	named := tree.NewNamedAction("attack", func(context.Context, domain.Actor) (any, error) { return nil, nil })
	assert.Equal(t, "attack", domain.LabelOf(named))
	assert.Equal(t, domain.KindAction, domain.LabelOf(tree.NewAction(nil)))
}

func TestComposites_Children(t *testing.T) {
	c, a, b := tree.NewAction(nil), tree.NewAction(nil), tree.NewAction(nil)

	assert.Equal(t, []domain.Node{c, a, b}, domain.ChildrenOf(tree.NewSelector(c, a, b)))
	assert.Equal(t, []domain.Node{c, a, b}, domain.ChildrenOf(tree.NewIndexSelector(c, a, b)))
	assert.Equal(t, []domain.Node{a, b}, domain.ChildrenOf(tree.NewSequence(a, b)))
	assert.Equal(t, []domain.Node{a, b}, domain.ChildrenOf(tree.NewRandomSelector([]domain.Node{a, b})))
	assert.Nil(t, domain.ChildrenOf(a))
}
