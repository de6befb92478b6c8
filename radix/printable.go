package radix

import (
	"github.com/qntx/avlset/avl"
	"github.com/qntx/avlset/container"
)

var (
	_ container.Printable     = (*Tree)(nil)
	_ container.PrintableNode = (*printableNode)(nil)
)

// Name identifies the tree for a renderer.
// Time complexity: O(1).
func (t *Tree) Name() string {
	return "RadixTree"
}

// Roots returns one printable node per non-empty bucket, in the storage
// order of the bucket map.
// Time complexity: O(b), where b is the number of buckets.
func (t *Tree) Roots() []container.PrintableNode {
	if len(t.buckets) == 0 {
		return nil
	}

	out := make([]container.PrintableNode, 0, len(t.buckets))
	for _, root := range t.buckets {
		out = append(out, &printableNode{root})
	}

	return out
}

type printableNode struct {
	n *Node
}

// Label returns the node's label, or "∅" for the empty terminator sentinel.
// Time complexity: O(1).
func (p *printableNode) Label() string {
	if p.n.label == "" {
		return "∅"
	}

	return p.n.label
}

// Leaf reports whether the node has no children.
// Time complexity: O(1).
func (p *printableNode) Leaf() bool {
	return p.n.isLeaf()
}

// Children returns the node's children in ascending label order.
// Time complexity: O(k), where k is the node's number of children.
func (p *printableNode) Children() []container.PrintableNode {
	if p.n.children == nil {
		return nil
	}

	values := p.n.children.Ordered(avl.InOrder)
	out := make([]container.PrintableNode, 0, len(values))

	for _, c := range values {
		out = append(out, &printableNode{c})
	}

	return out
}
