// Package tree holds the ordering collaborators shared by the tree
// implementations in this module.
package tree

import (
	"golang.org/x/exp/constraints"
)

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

// Compare is the natural ordering of l and r.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// OrderOf folds any three-way comparison result into an Order.
// Only the sign of c matters.
func OrderOf(c int) Order {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// Ordered adapts Compare into the plain func(l, r) int shape
// expected by the tree constructors.
func Ordered[T constraints.Ordered]() func(l, r T) int {
	return func(l, r T) int {
		return int(Compare(l, r))
	}
}

// Reverse returns an ordering that sorts in the opposite
// direction to cmp.
func Reverse[T any](cmp func(l, r T) int) func(l, r T) int {
	return func(l, r T) int {
		return cmp(r, l)
	}
}
