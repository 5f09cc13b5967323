package rbtree

// The rotations are the only primitives which alter the shape of the tree.
// Both preserve the in-order key sequence and run in O(1); only the fix-up
// procedures call them.

/*
    X		     Y
  A   Y	    =>     X   C
     B C 	  A B
*/
func (tree *Tree[T]) rotateLeft(x *Node[T]) {
	doAssert(x.right != nil)
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		tree.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

/*
     Y           X
   X   C  =>   A   Y
  A B             B C
*/
func (tree *Tree[T]) rotateRight(y *Node[T]) {
	doAssert(y.left != nil)
	x := y.left

	// Move "B"
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}

	x.parent = y.parent
	if y.parent == nil {
		tree.root = x
	} else if y == y.parent.left {
		y.parent.left = x
	} else {
		y.parent.right = x
	}
	x.right = y
	y.parent = x
}
