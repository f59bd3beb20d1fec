// Package testutils holds assertions shared by the tree tests.
package testutils

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Checker is a tree that can check its own invariants and draw itself.
type Checker interface {
	fmt.Stringer
	Validate() error
}

func helper(t TestT) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
}

// AssertValid fails the test if tr breaks any of its invariants.
// On failure the tree drawing is logged as well.
func AssertValid(t TestT, tr Checker, msgAndArgs ...any) bool {
	helper(t)

	err := tr.Validate()
	if err != nil {
		t.Logf("tree:\n%s", tr)
	}
	return assert.NoError(t, err, msgAndArgs...)
}

// AssertSorted fails the test unless values never decrease under cmp.
func AssertSorted[T any](t TestT, values []T, cmp func(a, b T) int) bool {
	helper(t)

	for i := 1; i < len(values); i++ {
		if cmp(values[i-1], values[i]) > 0 {
			t.Errorf("values out of order at index %d: %v before %v", i, values[i-1], values[i])
			return false
		}
	}
	return true
}
