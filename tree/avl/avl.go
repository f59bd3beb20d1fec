package avl

import (
	"go.lepak.sg/avltree/tree"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree of values of type T.
//
// The zero Tree is not usable: create one with New or NewOrdered so
// that it has an ordering. Tree should not be copied after the first
// insertion.
//
// Invariants, holding whenever no method is running:
//   - For any node N, no value in N's left subtree sorts after N.Value
//     and no value in N's right subtree sorts before it.
//   - N.Height() == 1 + max(height(N.Left()), height(N.Right())),
//     where the height of a missing subtree is 0.
//   - N.Balance() is in [-1, +1].
//   - Size() is the number of nodes reachable from Root().
//   - Every child's Parent() is the node that links to it, and the
//     root has no parent.
type Tree[T any] struct {
	root  *Node[T]
	cmp   func(a, b T) int
	count int
}

// New creates an empty tree ordered by cmp, which must return a
// negative number, zero or a positive number when a sorts before,
// together with or after b. cmp must be a consistent total order
// for as long as the tree is used.
func New[T any](cmp func(a, b T) int) *Tree[T] {
	if cmp == nil {
		panic("avl: nil ordering")
	}
	return &Tree[T]{
		cmp: cmp,
	}
}

// NewOrdered creates an empty tree using the natural ordering of T.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New(tree.Ordered[T]())
}

// Size returns the number of values in the tree, duplicates included.
func (t *Tree[T]) Size() int {
	return t.count
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Height returns the height of the whole tree; 0 when empty.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

// Min returns the node holding the lowest value, or nil if the tree is empty.
func (t *Tree[T]) Min() *Node[T] {
	return t.root.first()
}

// Max returns the node holding the highest value, or nil if the tree is empty.
func (t *Tree[T]) Max() *Node[T] {
	return t.root.last()
}

// Find returns a node whose value compares equal to v, or nil.
// If several values compare equal to v, Find returns the first one
// met on the way down from the root.
func (t *Tree[T]) Find(v T) *Node[T] {
	n := t.root

	for n != nil {
		switch tree.OrderOf(t.cmp(n.value, v)) {
		case tree.Less:
			n = n.right
		case tree.Greater:
			n = n.left
		case tree.Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// Contains reports whether some value in the tree compares equal to v.
func (t *Tree[T]) Contains(v T) bool {
	return t.Find(v) != nil
}

// Insert adds v to the tree. Insert never merges v into an existing
// equal value: every call adds one node.
func (t *Tree[T]) Insert(v T) {
	t.count++

	if t.root == nil {
		t.root = newNode(v, nil)
		return
	}

	n, p := t.root, (*Node[T])(nil)
	var cmp tree.Order

	for n != nil {
		// ties go left
		cmp = tree.OrderOf(t.cmp(n.value, v))
		switch cmp {
		case tree.Less:
			n, p = n.right, n
		case tree.Equal, tree.Greater:
			n, p = n.left, n
		default:
			panic("unreachable")
		}
	}

	newnode := newNode(v, p)

	switch cmp {
	case tree.Less:
		if p.right != nil {
			panic("impossible")
		}
		p.right = newnode
	case tree.Equal, tree.Greater:
		if p.left != nil {
			panic("impossible")
		}
		p.left = newnode
	default:
		panic("unreachable")
	}

	t.retrace(p)
}

// InsertAll inserts each of vs in turn.
func (t *Tree[T]) InsertAll(vs ...T) {
	for _, v := range vs {
		t.Insert(v)
	}
}

// Delete removes one value comparing equal to v and reports whether
// there was one. Deleting an absent value does nothing.
//
// Values can move between nodes during a delete, so a *Node obtained
// before Delete may hold a different value afterwards.
func (t *Tree[T]) Delete(v T) bool {
	n := t.Find(v)
	if n == nil {
		return false
	}

	t.remove(n)
	t.count--
	return true
}

// remove takes n out of the tree. Only leaves are ever unlinked:
// a node with children takes over the value of the lowest node in
// its successor subtree, and that node is removed instead.
func (t *Tree[T]) remove(n *Node[T]) {
	for n.left != nil || n.right != nil {
		sub := n.right
		if sub == nil {
			sub = n.left
		}
		m := sub.first()
		n.value = m.value
		n = m
	}

	parent := n.parent
	switch {
	case parent == nil:
		// the last node
		t.root = nil
	case parent.left == n:
		parent.left = nil
	case parent.right == n:
		parent.right = nil
	default:
		panic("impossible")
	}

	var zero T
	n.parent, n.value = nil, zero

	t.retrace(parent)
}

// retrace walks from n up to the root, refreshing each node's height
// and balance and rotating wherever a subtree has become unbalanced.
// After a delete a rotation can shorten a subtree and unbalance an
// ancestor, so every ancestor is checked.
func (t *Tree[T]) retrace(n *Node[T]) {
	for n != nil {
		n = t.rebalance(n).parent
	}
}
