package avl

import (
	"errors"
	"fmt"
	"math/bits"

	"go.uber.org/multierr"
)

var errRootParent = errors.New("root node has a parent")

// Validate checks every tree invariant and returns all the
// violations it finds, combined into one error. A healthy tree
// returns nil.
func (t *Tree[T]) Validate() error {
	var err error

	if t.root != nil && t.root.parent != nil {
		err = multierr.Append(err, errRootParent)
	}

	count := t.validate(t.root, nil, nil, nil, &err)
	if count != t.count {
		err = multierr.Append(err,
			fmt.Errorf("size is %d but %d nodes are reachable", t.count, count))
	}

	return err
}

// validate checks the subtree rooted at n and returns its node count.
// lo and hi are the nearest ancestors that the subtree hangs to the
// right and to the left of respectively.
func (t *Tree[T]) validate(n, parent, lo, hi *Node[T], err *error) int {
	if n == nil {
		return 0
	}

	if n.parent != parent {
		*err = multierr.Append(*err, fmt.Errorf("node %v: wrong parent link", n.value))
	}
	if lo != nil && t.cmp(n.value, lo.value) < 0 {
		*err = multierr.Append(*err,
			fmt.Errorf("node %v: sorts before %v but is in its right subtree", n.value, lo.value))
	}
	if hi != nil && t.cmp(n.value, hi.value) > 0 {
		*err = multierr.Append(*err,
			fmt.Errorf("node %v: sorts after %v but is in its left subtree", n.value, hi.value))
	}

	count := 1 +
		t.validate(n.left, n, lo, n, err) +
		t.validate(n.right, n, n, hi, err)

	l, r := height(n.left), height(n.right)
	want := 1 + l
	if r > l {
		want = 1 + r
	}
	if n.height != want {
		*err = multierr.Append(*err,
			fmt.Errorf("node %v: height is %d, expected %d", n.value, n.height, want))
	}
	if n.balance != l-r {
		*err = multierr.Append(*err,
			fmt.Errorf("node %v: balance is %d, expected %d", n.value, n.balance, l-r))
	}
	if l-r < -1 || l-r > 1 {
		*err = multierr.Append(*err,
			fmt.Errorf("node %v: unbalanced, subtree heights %d and %d", n.value, l, r))
	}

	return count
}

// IdealHeight is the height of a perfectly balanced tree of n nodes.
func IdealHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n))
}

// MaxHeight is the tallest an AVL tree of n nodes can get.
// The sparsest AVL tree of height h has N(h) = 1 + N(h-1) + N(h-2)
// nodes, so the answer is the largest h with N(h) <= n.
func MaxHeight(n int) int {
	// cur is N(h+1), prev is N(h)
	h, prev, cur := 0, 0, 1
	for cur <= n {
		h++
		prev, cur = cur, 1+cur+prev
	}
	return h
}
