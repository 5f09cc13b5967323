package rbtree

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Validate checks the tree integrity.
// The checks are as follows:
//
// 1. The root, if present, is black and has no parent.
//
// 2. Every child points back to its owner.
//
// 3. No red node has a red child.
//
// 4. Every path from a node down to an absent child passes through the
// same number of black nodes.
//
// 5. The in-order key sequence is non-decreasing and its length matches
// the recorded node count.
func (tree *Tree[T]) Validate() error {
	if isRed(tree.root) {
		return errors.New("the root is red")
	}
	if tree.root != nil && tree.root.parent != nil {
		return errors.New("the root has a parent")
	}
	if _, err := validateNode(tree.root); err != nil {
		return err
	}
	walked := 0
	var prev *Node[T]
	for n := minNode(tree.root); n != nil; n = n.Next() {
		if prev != nil && tree.cmp(prev.key, n.key) > 0 {
			return errors.Errorf("keys out of order: %v is before %v", prev.key, n.key)
		}
		prev = n
		walked++
	}
	if walked != tree.count {
		return errors.Errorf("node count mismatch: walked %d, recorded %d", walked, tree.count)
	}
	return nil
}

// validateNode returns the black-height of the subtree.
func validateNode[T any](n *Node[T]) (int, error) {
	if n == nil {
		return 1, nil
	}
	for _, child := range [2]*Node[T]{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			return 0, errors.Errorf("broken parent link under %v", n.key)
		}
		if isRed(n) && isRed(child) {
			return 0, errors.Errorf("red node %v has a red child %v", n.key, child.key)
		}
	}
	leftHeight, err := validateNode(n.left)
	if err != nil {
		return 0, err
	}
	rightHeight, err := validateNode(n.right)
	if err != nil {
		return 0, err
	}
	if leftHeight != rightHeight {
		return 0, errors.Errorf("black-height mismatch at %v: %d vs %d",
			n.key, leftHeight, rightHeight)
	}
	if n.color == black {
		leftHeight++
	}
	return leftHeight, nil
}

// Dump writes the tree to a string, one node per line in pre-order,
// indented by depth and suffixed with the node color, e.g. "7B".
func (tree *Tree[T]) Dump() string {
	buffer := &strings.Builder{}
	dumpNode(tree.root, 0, buffer)
	return buffer.String()
}

func dumpNode[T any](n *Node[T], depth int, buffer *strings.Builder) {
	if n == nil {
		return
	}
	suffix := "R"
	if n.color == black {
		suffix = "B"
	}
	fmt.Fprintf(buffer, "%s%v%s\n", strings.Repeat("  ", depth), n.key, suffix)
	dumpNode(n.left, depth+1, buffer)
	dumpNode(n.right, depth+1, buffer)
}
