package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Inserting {50,30,70,20,40,60,80} produces a complete tree with 50 at the
// root, which pins down all three traversal orders.
func testNewTraversalTree() *Tree[int] {
	tree := NewOrdered[int]()
	for _, key := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(key)
	}
	return tree
}

func TestTraversalOrders(t *testing.T) {
	tree := testNewTraversalTree()
	assert.Equal(t, []int{50, 30, 20, 40, 70, 60, 80}, collect(tree.PreOrder()))
	assert.Equal(t, []int{20, 30, 40, 50, 60, 70, 80}, collect(tree.InOrder()))
	assert.Equal(t, []int{20, 40, 30, 60, 80, 70, 50}, collect(tree.PostOrder()))
}

func TestTraversalRestartable(t *testing.T) {
	tree := testNewTraversalTree()
	sequence := tree.InOrder()
	first := collect(sequence)
	second := collect(sequence)
	assert.Equal(t, first, second)
}

func TestTraversalEarlyStop(t *testing.T) {
	tree := testNewTraversalTree()
	keys := []int{}
	for key := range tree.InOrder() {
		keys = append(keys, key)
		if len(keys) == 3 {
			break
		}
	}
	assert.Equal(t, []int{20, 30, 40}, keys)
}

func TestTraversalFromNode(t *testing.T) {
	tree := testNewTraversalTree()
	node := tree.Search(30)
	assert.Equal(t, []int{20, 30, 40}, collect(node.InOrder()))
	assert.Equal(t, []int{30, 20, 40}, collect(node.PreOrder()))
	assert.Equal(t, []int{20, 40, 30}, collect(node.PostOrder()))
}

func TestTraversalDoesNotMutate(t *testing.T) {
	tree := testNewTraversalTree()
	before := tree.Dump()
	collect(tree.PreOrder())
	collect(tree.InOrder())
	collect(tree.PostOrder())
	assert.Equal(t, before, tree.Dump())
	assert.NoError(t, tree.Validate())
}
