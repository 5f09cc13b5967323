package rbtree

// Search returns a node whose key compares equal to the given key, or nil
// if there is no such node. With duplicate keys present, the returned node
// is the occurrence nearest to the root. O(log n), read-only.
func (tree *Tree[T]) Search(key T) *Node[T] {
	n := tree.root
	for n != nil {
		comp := tree.cmp(key, n.key)
		if comp == 0 {
			return n
		}
		if comp < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

// Min returns the minimum node, nil when the tree is empty.
func (tree *Tree[T]) Min() *Node[T] {
	return minNode(tree.root)
}

// Max returns the maximum node, nil when the tree is empty.
func (tree *Tree[T]) Max() *Node[T] {
	return maxNode(tree.root)
}

// MinValue returns the smallest key in the tree. The second return value
// is false when the tree is empty.
func (tree *Tree[T]) MinValue() (T, bool) {
	if n := minNode(tree.root); n != nil {
		return n.key, true
	}
	var none T
	return none, false
}

// MaxValue returns the largest key in the tree. The second return value
// is false when the tree is empty.
func (tree *Tree[T]) MaxValue() (T, bool) {
	if n := maxNode(tree.root); n != nil {
		return n.key, true
	}
	var none T
	return none, false
}

// FindGE returns the first node whose key is >= the given key, or nil if
// every key in the tree is smaller.
func (tree *Tree[T]) FindGE(key T) *Node[T] {
	var found *Node[T]
	n := tree.root
	for n != nil {
		if tree.cmp(key, n.key) <= 0 {
			found = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return found
}

// FindLE returns the last node whose key is <= the given key, or nil if
// every key in the tree is larger.
func (tree *Tree[T]) FindLE(key T) *Node[T] {
	var found *Node[T]
	n := tree.root
	for n != nil {
		if tree.cmp(key, n.key) >= 0 {
			found = n
			n = n.right
		} else {
			n = n.left
		}
	}
	return found
}

// Next returns the in-order successor of the node: the minimum of the
// right subtree when there is one, otherwise the first ancestor reached
// from the left side. Returns nil when the node is the maximum.
func (n *Node[T]) Next() *Node[T] {
	if n.right != nil {
		return minNode(n.right)
	}
	p := n.parent
	for p != nil && n != p.left {
		n = p
		p = n.parent
	}
	return p
}

// Prev returns the in-order predecessor of the node. Returns nil when the
// node is the minimum.
func (n *Node[T]) Prev() *Node[T] {
	if n.left != nil {
		return maxNode(n.left)
	}
	p := n.parent
	for p != nil && n != p.right {
		n = p
		p = n.parent
	}
	return p
}

func minNode[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
