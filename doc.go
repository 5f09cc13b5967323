/*
Package rbtree implements a self-balancing ordered binary search tree -
a red-black tree - with logarithmic insertion, deletion, exact lookup,
minimum/maximum and in-order successor/predecessor queries.

Tree is the main object. It is generic over the key type and is ordered
by a caller-supplied three-way comparison; NewOrdered is a shortcut for
key types with the standard Go ordering:

	tree := rbtree.NewOrdered[int]()
	tree.Insert(20)
	tree.Insert(10)
	tree.Insert(30)
	for key := range tree.InOrder() {
		fmt.Println(key) // 10, 20, 30
	}

The tree stores keys only. A caller which needs to associate values with
the keys may hold the *Node handles returned by Search, FindGE and FindLE
and attach the values through node-external storage; the handles stay
valid until the corresponding node is removed.

Keys which compare equal are permitted and descend to the right of each
other. Remove deletes exactly one occurrence per call.

All operations are synchronous and single-threaded. A tree shared between
goroutines requires external serialization of the mutating operations
against everything else.
*/
package rbtree
