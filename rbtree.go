package rbtree

import "cmp"

const (
	red   = false
	black = true
)

// Node is a single element of a Tree. Nodes are created by Insert and
// survive until they are removed, so a caller may hold a *Node as a stable
// handle to a position in the tree and attach external data to it.
type Node[T any] struct {
	color               bool
	key                 T
	left, right, parent *Node[T]
}

// Key returns the key stored in the node.
func (n *Node[T]) Key() T {
	return n.key
}

// Tree is a red-black balanced binary search tree. It stores keys only;
// the order is defined by the three-way comparison supplied to New.
// Keys which compare equal are allowed and settle in the right subtree
// of each other.
//
// The tree is not safe for concurrent mutation. Callers which share a
// tree between goroutines must serialize Insert and Remove against each
// other and against the read operations.
type Tree[T any] struct {
	// Root of the tree, nil when the tree is empty.
	root *Node[T]

	// Three-way key comparison: negative, zero or positive.
	cmp func(a, b T) int

	// Number of nodes under root, including the root.
	count int
}

// New creates an empty tree ordered by the given comparison function.
// The comparison must implement a total order and must stay consistent
// for the lifetime of the tree.
func New[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{cmp: compare}
}

// NewOrdered creates an empty tree over a key type with the standard Go
// ordering.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New(cmp.Compare[T])
}

// Len returns the number of elements in the tree.
func (tree *Tree[T]) Len() int {
	return tree.count
}

// Root returns the root node, nil when the tree is empty.
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Clear removes all the nodes from the tree.
func (tree *Tree[T]) Clear() {
	tree.root = nil
	tree.count = 0
}

// Clone performs a deep copy of the tree - the nodes are created from
// scratch, preserving the shape and the colors of the origin.
func (tree *Tree[T]) Clone() *Tree[T] {
	clone := &Tree[T]{cmp: tree.cmp, count: tree.count}
	clone.root = cloneNode(tree.root, nil)
	return clone
}

func cloneNode[T any](n, parent *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	clone := &Node[T]{color: n.color, key: n.key, parent: parent}
	clone.left = cloneNode(n.left, clone)
	clone.right = cloneNode(n.right, clone)
	return clone
}

func doAssert(b bool) {
	if !b {
		panic("rbtree internal assertion failed")
	}
}

//
// Internal node attribute accessors
//

// Absent children count as black.
func getColor[T any](n *Node[T]) bool {
	if n == nil {
		return black
	}
	return n.color
}

func isRed[T any](n *Node[T]) bool {
	return n != nil && n.color == red
}

func setBlack[T any](n *Node[T]) {
	if n != nil {
		n.color = black
	}
}
