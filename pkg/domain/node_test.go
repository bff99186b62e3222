package domain_test

import (
	"context"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
)

type ptrNode struct{ children []domain.Node }

func (n *ptrNode) Execute(context.Context, domain.Ticker, domain.Actor) (any, error) { return nil, nil }
func (n *ptrNode) Children() []domain.Node                                         { return n.children }

type funcNode func()

func (funcNode) Execute(context.Context, domain.Ticker, domain.Actor) (any, error) { return nil, nil }

type valueNode struct{}

func (valueNode) Execute(context.Context, domain.Ticker, domain.Actor) (any, error) { return nil, nil }

func TestIsNil(t *testing.T) {
	var typedNil *ptrNode
	var nilFunc funcNode

	assert.True(t, domain.IsNil(nil))
	assert.True(t, domain.IsNil(typedNil))
	assert.True(t, domain.IsNil(nilFunc))
	assert.False(t, domain.IsNil(&ptrNode{}))
	assert.False(t, domain.IsNil(valueNode{}))
}

func TestTypedNil_LabelAndChildren(t *testing.T) {
	var typedNil *ptrNode

	assert.Equal(t, "<nil>", domain.LabelOf(typedNil))
	assert.Nil(t, domain.ChildrenOf(typedNil), "a nil composite is never dereferenced")
	assert.Len(t, domain.ChildrenOf(&ptrNode{children: []domain.Node{valueNode{}}}), 1)
}
