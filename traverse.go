package rbtree

import "iter"

// The traversals are lazy and restartable: ranging over the returned
// sequence again starts from scratch, and breaking out of the range stops
// the walk early. They are pure reads and never mutate the tree.

// PreOrder yields the keys of the subtree rooted at n in pre-order:
// node, left subtree, right subtree.
func (n *Node[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		preOrder(n, yield)
	}
}

// InOrder yields the keys of the subtree rooted at n in sorted order.
func (n *Node[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		inOrder(n, yield)
	}
}

// PostOrder yields the keys of the subtree rooted at n in post-order:
// left subtree, right subtree, node.
func (n *Node[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		postOrder(n, yield)
	}
}

// PreOrder yields all the keys of the tree in pre-order.
func (tree *Tree[T]) PreOrder() iter.Seq[T] {
	return tree.root.PreOrder()
}

// InOrder yields all the keys of the tree in sorted order.
func (tree *Tree[T]) InOrder() iter.Seq[T] {
	return tree.root.InOrder()
}

// PostOrder yields all the keys of the tree in post-order.
func (tree *Tree[T]) PostOrder() iter.Seq[T] {
	return tree.root.PostOrder()
}

func preOrder[T any](n *Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.key) && preOrder(n.left, yield) && preOrder(n.right, yield)
}

func inOrder[T any](n *Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.key) && inOrder(n.right, yield)
}

func postOrder[T any](n *Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return postOrder(n.left, yield) && postOrder(n.right, yield) && yield(n.key)
}
