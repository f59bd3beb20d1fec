package avl

// rebalance refreshes n and, if its subtrees differ in height by two,
// rotates it. It returns the node that now occupies n's old position.
func (t *Tree[T]) rebalance(n *Node[T]) *Node[T] {
	n.update()

	switch {
	case n.balance > 1:
		if n.left.balance < 0 {
			return t.rotateLeftRight(n)
		}
		return t.rotateRight(n)
	case n.balance < -1:
		if n.right.balance > 0 {
			return t.rotateRightLeft(n)
		}
		return t.rotateLeft(n)
	default:
		return n
	}
}

// replace hangs m where n used to hang: under n's parent,
// or at the root of the tree.
func (t *Tree[T]) replace(n, m *Node[T]) {
	p := n.parent

	switch {
	case p == nil:
		t.root = m
	case p.left == n:
		p.left = m
	case p.right == n:
		p.right = m
	default:
		panic("impossible")
	}

	m.parent = p
}

// rotateLeft rotates n to the left and returns
// the node that now occupies its old position.
// For example, this is the result of calling t.rotateLeft(n):
//
//	  -> n            p
//	    / \          / \
//	   m   p   ->   n   q
//	      / \      / \
//	     o   q    m   o
//
// The right child p is returned.
// The ordering m <= n <= o <= p <= q is preserved.
// Only n and p change height.
func (t *Tree[T]) rotateLeft(n *Node[T]) *Node[T] {
	p, o := n.right, n.right.left

	t.replace(n, p)

	n.right = o
	if o != nil {
		o.parent = n
	}

	p.left = n
	n.parent = p

	n.update()
	p.update()

	return p
}

// rotateRight rotates n to the right and returns
// the node that now occupies its old position.
// For example, this is the result of calling t.rotateRight(n):
//
//	  -> n            l
//	    / \          / \
//	   l   o   ->   k   n
//	  / \              / \
//	 k   m            m   o
//
// The left child l is returned.
// The ordering k <= l <= m <= n <= o is preserved.
// Only n and l change height.
func (t *Tree[T]) rotateRight(n *Node[T]) *Node[T] {
	l, m := n.left, n.left.right

	t.replace(n, l)

	n.left = m
	if m != nil {
		m.parent = n
	}

	l.right = n
	n.parent = l

	n.update()
	l.update()

	return l
}

// rotateLeftRight straightens a left-right zig-zag under n by
// rotating n's left child to the left, then rotates n to the right.
//
//	  -> n            m
//	    / \          / \
//	   l   o   ->   l   n
//	  / \          /|   |\
//	 k   m        k a   b o
//	    / \
//	   a   b
func (t *Tree[T]) rotateLeftRight(n *Node[T]) *Node[T] {
	t.rotateLeft(n.left)
	return t.rotateRight(n)
}

// rotateRightLeft is the mirror image of rotateLeftRight.
func (t *Tree[T]) rotateRightLeft(n *Node[T]) *Node[T] {
	t.rotateRight(n.right)
	return t.rotateLeft(n)
}
