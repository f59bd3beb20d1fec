package avl

// Node is one value stored in a Tree. Nodes are owned by their tree;
// the accessors give read-only access for visitors and lookups.
type Node[T any] struct {
	value               T
	left, right, parent *Node[T]

	// cached by the tree after every structural change
	height  int
	balance int
}

func newNode[T any](v T, parent *Node[T]) *Node[T] {
	return &Node[T]{
		value:  v,
		parent: parent,
		height: 1,
	}
}

// Value returns the value held by n.
func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) Left() *Node[T] {
	return n.left
}

func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Parent returns the node n hangs from, or nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Height returns the height of the subtree rooted at n.
// A leaf has height 1.
func (n *Node[T]) Height() int {
	return n.height
}

// Balance returns height(left) - height(right) for n.
// In a tree at rest it is always -1, 0 or +1.
func (n *Node[T]) Balance() int {
	return n.balance
}

// height of a possibly empty subtree
func height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// update refreshes the cached height and balance of n from its children.
func (n *Node[T]) update() {
	l, r := height(n.left), height(n.right)
	if l > r {
		n.height = 1 + l
	} else {
		n.height = 1 + r
	}
	n.balance = l - r
}

// lowest node in the subtree rooted at n
func (n *Node[T]) first() *Node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// highest node in the subtree rooted at n
func (n *Node[T]) last() *Node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
