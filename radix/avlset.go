package radix

import "github.com/qntx/avlset/avl"

// avlSet is a radix node's child collection: an AVL tree of *Node
// ordered by label.
type avlSet = avl.Tree[*Node]

func newAVLSet() *avlSet {
	return avl.NewWith[*Node](labelComparator)
}
