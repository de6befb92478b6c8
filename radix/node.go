// Package radix implements a compact-prefix trie whose per-node child
// collection is itself an AVL tree ordered by child label.
package radix

import setcmp "github.com/qntx/avlset/cmp"

// Node is one node of a radix tree. Its label, concatenated with every
// ancestor's label back to the bucket root, spells a stored prefix; a
// leaf's full concatenation spells a stored word.
type Node struct {
	label    string
	parent   *Node
	children *avlSet
}

// Label returns the node's own label segment.
// Time complexity: O(1).
func (n *Node) Label() string {
	return n.label
}

// Parent returns the node's parent, or nil if it is a bucket root.
// Time complexity: O(1).
func (n *Node) Parent() *Node {
	return n.parent
}

// isLeaf reports whether n has no children.
func (n *Node) isLeaf() bool {
	return n.children == nil || n.children.IsEmpty()
}

// hasEmptyChild reports whether n carries a terminator sentinel.
func (n *Node) hasEmptyChild() bool {
	if n.children == nil {
		return false
	}

	return n.children.Contains(&Node{label: ""})
}

// isWordBoundary reports whether n's own accumulated path is itself a
// stored word: either n has no children (its path was stored directly),
// or a terminator sentinel marks it as a word despite also continuing as
// a prefix of longer words.
func (n *Node) isWordBoundary() bool {
	return n.isLeaf() || n.hasEmptyChild()
}

// ensureChildren lazily allocates n's child set.
func (n *Node) ensureChildren() *avlSet {
	if n.children == nil {
		n.children = newAVLSet()
	}

	return n.children
}

// labelComparator orders sibling nodes by label, the ordering the LCP
// invariant relies on: no two siblings share a leading code unit, so the
// first byte alone decides order between any two of them.
func labelComparator(a, b *Node) int {
	return setcmp.Compare(a.label, b.label)
}

// byFirstByte builds a Unary comparator that steers a descent toward the
// sibling whose label starts with target, relying on the same LCP
// invariant: among siblings, first-byte comparison and full-label
// comparison agree.
func byFirstByte(target byte) func(*Node) int {
	return func(n *Node) int {
		switch {
		case len(n.label) == 0:
			return -1
		case n.label[0] > target:
			return 1
		case n.label[0] < target:
			return -1
		default:
			return 0
		}
	}
}

// pathSegments reconstructs the label sequence from the bucket root down
// to and including n.
func pathSegments(n *Node) []string {
	var labels []string

	for cur := n; cur != nil; cur = cur.parent {
		labels = append(labels, cur.label)
	}

	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}

	return labels
}

// pathString is pathSegments joined, the full word spelled by n's path.
func pathString(n *Node) string {
	segs := pathSegments(n)

	total := 0
	for _, s := range segs {
		total += len(s)
	}

	out := make([]byte, 0, total)
	for _, s := range segs {
		out = append(out, s...)
	}

	return string(out)
}
