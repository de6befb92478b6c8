// Package printer renders any container.Printable as an indented ASCII
// tree, in the manner of the dot-style "tree" command.
//
// It never reaches into a container's internal node graph: it only calls
// Name, IsEmpty, Roots, Label, Leaf, and Children, so the same renderer
// works for an avl.Tree, a radix.Tree, or any future Printable.
package printer

import (
	"io"
	"strings"

	"github.com/qntx/avlset/container"
)

// Sprint renders c as a string.
// Time complexity: O(n).
func Sprint(c container.Printable) string {
	if c.IsEmpty() {
		return c.Name() + "[]"
	}

	var sb strings.Builder

	sb.WriteString(c.Name() + "\n")

	roots := c.Roots()
	for _, root := range roots {
		output(root, "", true, &sb)
	}

	return sb.String()
}

// Fprint writes the rendering of c to w.
func Fprint(w io.Writer, c container.Printable) error {
	_, err := io.WriteString(w, Sprint(c))
	return err
}

// output recursively builds a string representation of node for printing.
// A Printable node has no left/right distinction, so its children are
// split into a first half (drawn above the node's own line, where a
// binary tree's right child would go) and a second half (drawn below,
// where its left child would go).
func output(node container.PrintableNode, prefix string, isTail bool, sb *strings.Builder) {
	children := node.Children()

	above, below := splitChildren(children)

	for _, child := range above {
		newPrefix := prefix
		if isTail {
			newPrefix += "│   "
		} else {
			newPrefix += "    "
		}

		output(child, newPrefix, false, sb)
	}

	sb.WriteString(prefix)

	if isTail {
		sb.WriteString("└── ")
	} else {
		sb.WriteString("┌── ")
	}

	sb.WriteString(node.Label() + "\n")

	for _, child := range below {
		newPrefix := prefix
		if isTail {
			newPrefix += "    "
		} else {
			newPrefix += "│   "
		}

		output(child, newPrefix, true, sb)
	}
}

// splitChildren divides a node's children into an "above" half and a
// "below" half, mirroring a binary tree's right/left split for nodes
// that may have any number of children.
func splitChildren(children []container.PrintableNode) (above, below []container.PrintableNode) {
	if len(children) == 0 {
		return nil, nil
	}

	mid := len(children) / 2

	return children[:mid], children[mid:]
}
