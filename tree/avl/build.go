package avl

import (
	"math/rand"
)

// BuildRandom builds a tree with num nodes.
// Node values are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	tr := NewOrdered[int]()
	tr.InsertAll(nodes...)

	return tr
}

// BuildSequential builds a tree by inserting 0, 1, ..., num-1 in
// ascending order, the input that degrades an unbalanced binary
// search tree into a list.
func BuildSequential(num int) *Tree[int] {
	tr := NewOrdered[int]()
	for i := 0; i < num; i++ {
		tr.Insert(i)
	}
	return tr
}
