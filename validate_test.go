package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDetectsRedRoot(t *testing.T) {
	tree := NewOrdered[int]()
	tree.Insert(1)
	tree.root.color = red
	err := tree.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "root is red")
	}
}

func TestValidateDetectsRedRed(t *testing.T) {
	tree := NewOrdered[int]()
	for _, key := range []int{10, 20, 30} {
		tree.Insert(key)
	}
	// 20B with 10R and 30R; making 20 red breaks more than one invariant,
	// so corrupt a leaf's child instead
	tree.root.left.left = &Node[int]{color: red, key: 5, parent: tree.root.left}
	tree.count++
	err := tree.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "red child")
	}
}

func TestValidateDetectsBrokenParentLink(t *testing.T) {
	tree := NewOrdered[int]()
	for _, key := range []int{10, 20, 30} {
		tree.Insert(key)
	}
	tree.root.left.parent = tree.root.right
	err := tree.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "parent link")
	}
}

func TestValidateDetectsBlackHeightMismatch(t *testing.T) {
	tree := NewOrdered[int]()
	for _, key := range []int{10, 20, 30} {
		tree.Insert(key)
	}
	tree.root.left.color = black
	err := tree.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "black-height")
	}
}

func TestValidateDetectsCountMismatch(t *testing.T) {
	tree := NewOrdered[int]()
	tree.Insert(1)
	tree.count = 2
	err := tree.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "count mismatch")
	}
}
