package avl

// rotateLeft performs a left rotation around pivot and returns the new
// subtree root. It only rewires pivot, pivot.right and the grandchild
// that moves sides; it does not read or repair pivot's own parent link,
// so it is safe to call both on a live tree node and on a detached node
// graph being assembled by the split/join layer. Callers that care about
// an external reference to pivot (a parent's child slot, or a tree's
// root field) must redirect it themselves using the returned node.
func rotateLeft[T any](pivot *Node[T]) *Node[T] {
	r := pivot.right

	setRight(pivot, r.left)
	setLeft(r, pivot)

	refresh(pivot)
	refresh(r)

	return r
}

// rotateRight performs a right rotation around pivot. See rotateLeft.
func rotateRight[T any](pivot *Node[T]) *Node[T] {
	l := pivot.left

	setLeft(pivot, l.right)
	setRight(l, pivot)

	refresh(pivot)
	refresh(l)

	return l
}

// rebalance restores the AVL property at node, assuming its two children
// are themselves already balanced (the usual state after a single insert,
// delete, or join step touches only one path). It returns the new top of
// this subtree; node itself may no longer be it.
func rebalance[T any](node *Node[T]) *Node[T] {
	switch bf := balanceFactor(node); {
	case bf < -1:
		if balanceFactor(node.right) > 0 {
			setRight(node, rotateRight(node.right))
		}

		return rotateLeft(node)
	case bf > 1:
		if balanceFactor(node.left) < 0 {
			setLeft(node, rotateLeft(node.left))
		}

		return rotateRight(node)
	default:
		return node
	}
}
