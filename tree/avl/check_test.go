package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tr *Tree[int])
		wantErr []string
	}{
		{
			name:    "healthy",
			corrupt: func(tr *Tree[int]) {},
		},
		{
			name: "size",
			corrupt: func(tr *Tree[int]) {
				tr.count++
			},
			wantErr: []string{"size is 8 but 7 nodes are reachable"},
		},
		{
			name: "height",
			corrupt: func(tr *Tree[int]) {
				tr.root.height = 5
			},
			wantErr: []string{"node 4: height is 5, expected 3"},
		},
		{
			name: "balance",
			corrupt: func(tr *Tree[int]) {
				tr.root.right.balance = 1
			},
			wantErr: []string{"node 6: balance is 1, expected 0"},
		},
		{
			name: "parent",
			corrupt: func(tr *Tree[int]) {
				tr.root.right.right.parent = tr.root
			},
			wantErr: []string{"node 7: wrong parent link"},
		},
		{
			name: "root parent",
			corrupt: func(tr *Tree[int]) {
				tr.root.parent = tr.root.left
			},
			wantErr: []string{errRootParent.Error(), "node 4: wrong parent link"},
		},
		{
			name: "order",
			corrupt: func(tr *Tree[int]) {
				tr.root.left.right.value = 5
			},
			wantErr: []string{"node 5: sorts after 4 but is in its left subtree"},
		},
		{
			name: "order right",
			corrupt: func(tr *Tree[int]) {
				tr.root.right.left.value = 0
			},
			wantErr: []string{"node 0: sorts before 4 but is in its right subtree"},
		},
		{
			name: "unbalanced",
			corrupt: func(tr *Tree[int]) {
				// hang 8 and 9 under 7 without rebalancing
				n7 := tr.root.right.right
				n7.right = newNode(8, n7)
				n7.right.right = newNode(9, n7.right)
				tr.count += 2
				for n := n7.right; n != nil; n = n.parent {
					n.update()
				}
			},
			wantErr: []string{
				"node 7: unbalanced, subtree heights 0 and 2",
				"node 6: unbalanced, subtree heights 1 and 3",
				"node 4: unbalanced, subtree heights 2 and 4",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newCompleteTree_2Tall()
			require.NoError(t, tr.Validate())

			tt.corrupt(tr)
			err := tr.Validate()

			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			errs := multierr.Errors(err)
			require.Len(t, errs, len(tt.wantErr), "errors: %v", err)
			for i, want := range tt.wantErr {
				assert.EqualError(t, errs[i], want)
			}
		})
	}
}

func TestValidate_Empty(t *testing.T) {
	assert.NoError(t, NewOrdered[string]().Validate())
}

func TestIdealHeight(t *testing.T) {
	for n, want := range map[int]int{
		-1: 0, 0: 0, 1: 1, 2: 2, 3: 2, 4: 3, 7: 3, 8: 4, 1023: 10, 1024: 11,
	} {
		assert.Equal(t, want, IdealHeight(n), "n=%d", n)
	}
}

func TestMaxHeight(t *testing.T) {
	// the fewest nodes of an AVL tree with height h: 0, 1, 2, 4, 7, 12, 20, 33
	for n, want := range map[int]int{
		0: 0, 1: 1, 2: 2, 3: 2, 4: 3, 6: 3, 7: 4, 11: 4, 12: 5, 19: 5, 20: 6, 33: 7,
	} {
		assert.Equal(t, want, MaxHeight(n), "n=%d", n)
	}
}
