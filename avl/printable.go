package avl

import (
	"fmt"

	"github.com/qntx/avlset/container"
)

var (
	_ container.Printable     = (*Tree[int])(nil)
	_ container.PrintableNode = (*printableNode[int])(nil)
)

// Name identifies the tree for a renderer.
// Time complexity: O(1).
func (t *Tree[T]) Name() string {
	return "AVLTree"
}

// Roots returns the tree's single root, wrapped for rendering.
// Time complexity: O(1).
func (t *Tree[T]) Roots() []container.PrintableNode {
	if t.root == nil {
		return nil
	}

	return []container.PrintableNode{&printableNode[T]{t.root}}
}

type printableNode[T any] struct {
	n *Node[T]
}

// Label returns the node's value rendered as a string.
// Time complexity: O(1).
func (p *printableNode[T]) Label() string {
	return fmt.Sprintf("%v", p.n.value)
}

// Leaf reports whether the node has no children.
// Time complexity: O(1).
func (p *printableNode[T]) Leaf() bool {
	return p.n.left == nil && p.n.right == nil
}

// Children returns the right child before the left, matching
// avl.Tree.String's own right-above/left-below convention so printer.Sprint
// renders a node with two children in the same orientation as the tree's
// built-in String method. A node with a single child yields a one-element
// slice, which printer.Sprint draws below the node whichever side it is on.
// Time complexity: O(1).
func (p *printableNode[T]) Children() []container.PrintableNode {
	var out []container.PrintableNode

	if p.n.right != nil {
		out = append(out, &printableNode[T]{p.n.right})
	}

	if p.n.left != nil {
		out = append(out, &printableNode[T]{p.n.left})
	}

	return out
}
