package rbtree

// Insert adds a new node with the given key and returns true. Keys which
// compare equal to an already stored key are not rejected; the new node
// descends to the right of the equal one. Callers needing set semantics
// must check Search before inserting.
func (tree *Tree[T]) Insert(key T) bool {
	n := &Node[T]{color: red, key: key}
	if tree.root == nil {
		tree.root = n
	} else {
		parent := tree.root
		for {
			if tree.cmp(key, parent.key) < 0 {
				if parent.left == nil {
					parent.left = n
					n.parent = parent
					break
				}
				parent = parent.left
			} else {
				// ties go right
				if parent.right == nil {
					parent.right = n
					n.parent = parent
					break
				}
				parent = parent.right
			}
		}
	}
	tree.count++
	tree.insertFixup(n)
	return true
}

// insertFixup restores the red-black invariants after attaching a fresh
// red leaf. It walks up the ancestor chain while the parent is red,
// resolving one of three cases per side on each iteration, and blackens
// the root at the end.
func (tree *Tree[T]) insertFixup(n *Node[T]) {
	for parent := n.parent; isRed(parent); parent = n.parent {
		// the root is black, so a red parent always has a parent
		grandparent := parent.parent
		if parent == grandparent.left {
			uncle := grandparent.right

			// case 1: the uncle is red as well - recolor and move up
			if isRed(uncle) {
				parent.color = black
				uncle.color = black
				grandparent.color = red
				n = grandparent
				continue
			}

			// case 2: black uncle, n is the right child - rotate into case 3
			if n == parent.right {
				tree.rotateLeft(parent)
				n, parent = parent, n
			}

			// case 3: black uncle, n is the left child
			parent.color = black
			grandparent.color = red
			tree.rotateRight(grandparent)
		} else {
			// the mirror image of the above
			uncle := grandparent.left

			if isRed(uncle) {
				parent.color = black
				uncle.color = black
				grandparent.color = red
				n = grandparent
				continue
			}

			if n == parent.left {
				tree.rotateRight(parent)
				n, parent = parent, n
			}

			parent.color = black
			grandparent.color = red
			tree.rotateLeft(grandparent)
		}
	}
	tree.root.color = black
}
