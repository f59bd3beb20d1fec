package avl

// Visitor is called with each node during a traversal. It may read
// the node but must not modify the tree it came from.
type Visitor[T any] func(n *Node[T])

// Traverse calls visit on every node in order, lowest value first.
func (t *Tree[T]) Traverse(visit Visitor[T]) {
	visitInOrder(t.root, visit)
}

func visitInOrder[T any](n *Node[T], visit Visitor[T]) {
	if n == nil {
		return
	}
	visitInOrder(n.left, visit)
	visit(n)
	visitInOrder(n.right, visit)
}

// PreOrder calls visit on every node, each node before its subtrees.
func (t *Tree[T]) PreOrder(visit Visitor[T]) {
	visitPreOrder(t.root, visit)
}

func visitPreOrder[T any](n *Node[T], visit Visitor[T]) {
	if n == nil {
		return
	}
	visit(n)
	visitPreOrder(n.left, visit)
	visitPreOrder(n.right, visit)
}

// Values returns all values in order.
func (t *Tree[T]) Values() []T {
	vs := make([]T, 0, t.count)
	t.Traverse(func(n *Node[T]) {
		vs = append(vs, n.value)
	})
	return vs
}
