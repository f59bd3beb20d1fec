package avl

import (
	"fmt"
	"strings"
)

// String returns a drawing of the tree. Each node is shown with its
// balance factor. A complete tree with height 2 looks like this:
//
//	4 (+0)
//	├─L─2 (+0)
//	│   ├─L─1 (+0)
//	│   └─R─3 (+0)
//	└─R─6 (+0)
//	    ├─L─5 (+0)
//	    └─R─7 (+0)
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T any](
	sb *strings.Builder, n *Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	fmt.Fprintf(sb, "%v (%+d)", n.value, n.balance)
	sb.WriteRune('\n')

	if n.left != nil {
		printvisit(sb, n.left, prefix, treeLeftBranch, false, n.right != nil)
	}

	if n.right != nil {
		printvisit(sb, n.right, prefix, treeRightBranch, false, false)
	}
}
