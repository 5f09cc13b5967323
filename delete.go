package rbtree

// Remove deletes a node whose key compares equal to the given key and
// returns true, or returns false when no such node exists. With duplicate
// keys present, the removed occurrence is the one Search finds: the one
// nearest to the root.
func (tree *Tree[T]) Remove(key T) bool {
	n := tree.Search(key)
	if n == nil {
		return false
	}
	tree.RemoveNode(n)
	return true
}

// RemoveNode detaches the node from the tree. The node must belong to this
// tree. Other node handles stay valid: when the node has two children, its
// successor is physically spliced into its slot instead of having the keys
// copied over.
func (tree *Tree[T]) RemoveNode(n *Node[T]) {
	tree.count--
	if n.left != nil && n.right != nil {
		tree.removeWithTwoChildren(n)
	} else {
		tree.removeWithOneChild(n)
	}
	n.left, n.right, n.parent = nil, nil, nil
}

// removeWithOneChild splices out a node with at most one child. Removing a
// black node leaves a black-height deficit at the child's position; a red
// child absorbs it by turning black, an absent child requires the fix-up
// loop with the parent passed explicitly since there is no node to inspect.
func (tree *Tree[T]) removeWithOneChild(n *Node[T]) {
	child := n.left
	if child == nil {
		child = n.right
	}
	parent := n.parent
	tree.transplant(n, child)
	if n.color == black {
		if isRed(child) {
			child.color = black
		} else if parent != nil {
			tree.removeFixup(child, parent)
		}
	}
}

// removeWithTwoChildren splices the successor out of its original position
// and moves it into n's slot, taking over n's color so the color structure
// at that slot is unaffected. The gap at the successor's original position
// is then repaired with the successor's original color deciding whether the
// fix-up loop must run. The successor is the minimum of the right subtree
// and thus never has a left child.
func (tree *Tree[T]) removeWithTwoChildren(n *Node[T]) {
	succ := minNode(n.right)
	succColor := succ.color
	fixNode := succ.right
	fixParent := succ.parent
	if fixParent == n {
		// the successor stays on top of its own right child
		fixParent = succ
	} else {
		tree.transplant(succ, succ.right)
		succ.right = n.right
		succ.right.parent = succ
	}
	tree.transplant(n, succ)
	succ.left = n.left
	succ.left.parent = succ
	succ.color = n.color
	if succColor == black {
		tree.removeFixup(fixNode, fixParent)
	}
}

// transplant puts newn into oldn's position. newn may be nil.
func (tree *Tree[T]) transplant(oldn, newn *Node[T]) {
	if oldn.parent == nil {
		tree.root = newn
	} else if oldn == oldn.parent.left {
		oldn.parent.left = newn
	} else {
		oldn.parent.right = newn
	}
	if newn != nil {
		newn.parent = oldn.parent
	}
}

// removeFixup repairs the black-height deficit at n's position after a
// black node was removed from parent's subtree. n may be nil, which is why
// parent travels alongside it. The loop resolves one of four cases per
// side on each iteration; cases 1 and 3 fall through to the next case in
// the same iteration, case 2 moves the deficit up, case 4 resolves it.
func (tree *Tree[T]) removeFixup(n, parent *Node[T]) {
	for n != tree.root && getColor(n) == black {
		if n == parent.left {
			sibling := parent.right

			// case 1: red sibling - rotate to get a black one
			if isRed(sibling) {
				sibling.color = black
				parent.color = red
				tree.rotateLeft(parent)
				sibling = parent.right
			}

			// case 2: black sibling with two black children - the
			// deficit propagates upward
			if getColor(sibling.left) == black && getColor(sibling.right) == black {
				sibling.color = red
				n = parent
				parent = n.parent
			} else {
				// case 3: the sibling's far child is black, the near
				// one is red - rotate to get a red far child
				if getColor(sibling.right) == black {
					setBlack(sibling.left)
					sibling.color = red
					tree.rotateRight(sibling)
					sibling = parent.right
				}

				// case 4: red far child - the deficit is resolved
				sibling.color = parent.color
				parent.color = black
				setBlack(sibling.right)
				tree.rotateLeft(parent)
				n = tree.root
			}
		} else {
			// the mirror image of the above
			sibling := parent.left

			if isRed(sibling) {
				sibling.color = black
				parent.color = red
				tree.rotateRight(parent)
				sibling = parent.left
			}

			if getColor(sibling.left) == black && getColor(sibling.right) == black {
				sibling.color = red
				n = parent
				parent = n.parent
			} else {
				if getColor(sibling.left) == black {
					setBlack(sibling.right)
					sibling.color = red
					tree.rotateLeft(sibling)
					sibling = parent.left
				}

				sibling.color = parent.color
				parent.color = black
				setBlack(sibling.left)
				tree.rotateRight(parent)
				n = tree.root
			}
		}
	}
	setBlack(n)
}
