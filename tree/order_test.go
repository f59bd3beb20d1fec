package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	assert.Equal(t, Less, Compare(1, 2))
	assert.Equal(t, Equal, Compare("a", "a"))
	assert.Equal(t, Greater, Compare(2.5, -1.0))
}

func TestOrderOf(t *testing.T) {
	tests := []struct {
		name string
		c    int
		want Order
	}{
		{"negative", -42, Less},
		{"minus one", -1, Less},
		{"zero", 0, Equal},
		{"one", 1, Greater},
		{"positive", 1 << 30, Greater},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderOf(tt.c))
		})
	}
}

func TestReverse(t *testing.T) {
	cmp := Ordered[int]()
	rev := Reverse(cmp)

	assert.Equal(t, -1, cmp(1, 2))
	assert.Equal(t, 1, rev(1, 2))
	assert.Equal(t, 0, rev(3, 3))
}

func TestOrder_String(t *testing.T) {
	assert.Equal(t, "Less", Less.String())
	assert.Equal(t, "Equal", Equal.String())
	assert.Equal(t, "Greater", Greater.String())
	assert.Equal(t, "<invalid tree.Order>", Order(7).String())
}
