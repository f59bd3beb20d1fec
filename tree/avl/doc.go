// Package avl is a self-balancing binary search tree with parent
// pointers on every node.
//
// The tree is ordered by a comparison function supplied when it is
// created. Values that compare equal are stored as separate nodes;
// new duplicates are routed into the left subtree of the equal node
// they meet, although later rotations may move an equal value to
// either side.
//
// Note: a Tree is not safe for concurrent use. Either keep each tree
// inside a single goroutine or guard it with a mutex.
package avl
