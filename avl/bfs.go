package avl

import (
	"fmt"

	setcmp "github.com/qntx/avlset/cmp"
)

// join combines a left subtree, a single value known to sit strictly
// between the two subtrees' values, and a right subtree into one balanced
// subtree. It performs no comparisons: the caller (split, or a Tree-level
// set operation) is responsible for the ordering precondition.
func join[T any](left *Node[T], k T, right *Node[T]) *Node[T] {
	switch hl, hr := height(left), height(right); {
	case hl > hr+1:
		return joinRight(left, k, right)
	case hr > hl+1:
		return joinLeft(left, k, right)
	default:
		n := &Node[T]{value: k, count: 1}
		setLeft(n, left)
		setRight(n, right)
		refresh(n)

		return n
	}
}

// joinRight handles join when left is more than one level taller than
// right: it walks left's right spine down to the point where the height
// difference has narrowed to at most one, attaches a fresh node there,
// and rebalances back up that spine.
func joinRight[T any](left *Node[T], k T, right *Node[T]) *Node[T] {
	if height(left.right) <= height(right)+1 {
		n := &Node[T]{value: k, count: 1}
		setLeft(n, left.right)
		setRight(n, right)
		refresh(n)

		setRight(left, n)
		refresh(left)

		if balanceFactor(left) < -1 {
			return rebalance(left)
		}

		return left
	}

	setRight(left, joinRight(left.right, k, right))
	refresh(left)

	if balanceFactor(left) < -1 {
		return rebalance(left)
	}

	return left
}

// joinLeft is the mirror image of joinRight, used when right is more
// than one level taller than left.
func joinLeft[T any](left *Node[T], k T, right *Node[T]) *Node[T] {
	if height(right.left) <= height(left)+1 {
		n := &Node[T]{value: k, count: 1}
		setLeft(n, left)
		setRight(n, right.left)
		refresh(n)

		setLeft(right, n)
		refresh(right)

		if balanceFactor(right) > 1 {
			return rebalance(right)
		}

		return right
	}

	setLeft(right, joinLeft(left, k, right.left))
	refresh(right)

	if balanceFactor(right) > 1 {
		return rebalance(right)
	}

	return right
}

// join2 combines left and right, neither of which supplies a middle
// value, by pulling left's maximum out and using it as the join key.
func join2[T any](left, right *Node[T]) *Node[T] {
	if left == nil {
		return right
	}

	if right == nil {
		return left
	}

	newLeft, k := splitLast(left)

	return join(newLeft, k, right)
}

// splitLast removes node's maximum value and returns the remaining tree
// alongside it. node must not be nil.
func splitLast[T any](node *Node[T]) (*Node[T], T) {
	if node.right == nil {
		return node.left, node.value
	}

	newRight, k := splitLast(node.right)

	return join(node.left, node.value, newRight), k
}

// split partitions node's values against key: everything less than key
// goes left, everything greater goes right, and isPresent reports whether
// key itself was found.
func split[T any](node *Node[T], key T, cmp setcmp.Comparator[T]) (left *Node[T], isPresent bool, right *Node[T]) {
	if node == nil {
		return nil, false, nil
	}

	switch c := cmp(key, node.value); {
	case c == 0:
		return node.left, true, node.right
	case c < 0:
		l, present, r := split(node.left, key, cmp)

		return l, present, join(r, node.value, node.right)
	default:
		l, present, r := split(node.right, key, cmp)

		return join(node.left, node.value, l), present, r
	}
}

func union[T any](n1, n2 *Node[T], cmp setcmp.Comparator[T]) *Node[T] {
	if n1 == nil {
		return n2
	}

	if n2 == nil {
		return n1
	}

	l1, _, r1 := split(n1, n2.value, cmp)

	return join(union(l1, n2.left, cmp), n2.value, union(r1, n2.right, cmp))
}

func intersection[T any](n1, n2 *Node[T], cmp setcmp.Comparator[T]) *Node[T] {
	if n1 == nil || n2 == nil {
		return nil
	}

	l1, present, r1 := split(n1, n2.value, cmp)

	if present {
		return join(intersection(l1, n2.left, cmp), n2.value, intersection(r1, n2.right, cmp))
	}

	return join2(intersection(l1, n2.left, cmp), intersection(r1, n2.right, cmp))
}

func difference[T any](n1, n2 *Node[T], cmp setcmp.Comparator[T]) *Node[T] {
	if n1 == nil {
		return nil
	}

	if n2 == nil {
		return n1
	}

	l1, _, r1 := split(n1, n2.value, cmp)

	return join2(difference(l1, n2.left, cmp), difference(r1, n2.right, cmp))
}

// wrap publishes a node graph produced by the functions above as a Tree:
// it severs root's stale parent link and recomputes the cached length and
// boundary values.
func wrap[T any](root *Node[T], cmp setcmp.Comparator[T]) *Tree[T] {
	t := &Tree[T]{root: root, comparator: cmp}

	if root == nil {
		return t
	}

	root.parent = nil
	t.len = count(root)

	lo := leftmost(root).value
	hi := rightmost(root).value
	t.lowest, t.highest = &lo, &hi

	return t
}

// Union returns a new Tree holding every value present in t or in other.
// Time complexity: O(m log(n/m)), where m and n are the two trees' sizes.
func (t *Tree[T]) Union(other *Tree[T]) *Tree[T] {
	return wrap(union(t.root, other.root, t.comparator), t.comparator)
}

// Intersection returns a new Tree holding only the values present in both
// t and other. Time complexity: O(m log(n/m)), where m and n are the two
// trees' sizes.
func (t *Tree[T]) Intersection(other *Tree[T]) *Tree[T] {
	return wrap(intersection(t.root, other.root, t.comparator), t.comparator)
}

// Difference returns a new Tree holding the values of t that are not
// present in other. Time complexity: O(m log(n/m)), where m and n are the
// two trees' sizes.
func (t *Tree[T]) Difference(other *Tree[T]) *Tree[T] {
	return wrap(difference(t.root, other.root, t.comparator), t.comparator)
}

// SplitTree partitions tree's values against key, consuming tree: the
// two returned trees share no nodes with a tree the caller should keep
// using afterward. isPresent reports whether key itself was found.
// Time complexity: O(log n).
func SplitTree[T any](tree *Tree[T], key T) (left *Tree[T], isPresent bool, right *Tree[T]) {
	l, present, r := split(tree.root, key, tree.comparator)

	return wrap(l, tree.comparator), present, wrap(r, tree.comparator)
}

// OverlapError reports that JoinTrees was asked to join two trees (and,
// optionally, a middle key) whose value ranges are not disjoint and
// correctly ordered.
type OverlapError struct {
	HasKey     bool
	Key        string
	LowerBound string
	UpperBound string
}

// Error renders the overlap message described by e's fields.
// Time complexity: O(1).
func (e *OverlapError) Error() string {
	if e.HasKey {
		return fmt.Sprintf(
			`Cannot join 2 overlapping trees. The key "%s" must be greater than "%s" and lower than "%s" based on the comparator provided`,
			e.Key, e.LowerBound, e.UpperBound,
		)
	}

	return fmt.Sprintf(
		`Cannot join 2 overlapping trees. The lowerbound of "%s" must be less than the upperbound of "%s"`,
		e.LowerBound, e.UpperBound,
	)
}

// JoinTrees combines lower, an optional middle key, and upper into a
// single Tree, in that order. If key is non-nil it must sit strictly
// between every value of lower and every value of upper; otherwise the
// greatest value of lower must be strictly less than the least value of
// upper. Violating either requirement returns an *OverlapError instead
// of a tree. Time complexity: O(log n), where n is the combined size: the
// join itself is O(|height(lower) - height(upper)| + 1), and publishing the
// result walks down to its lowest and highest values.
func JoinTrees[T any](lower *Tree[T], key *T, upper *Tree[T]) (*Tree[T], error) {
	cmp := lower.comparator

	if key != nil {
		var lb, ub string

		violated := false

		if lower.highest != nil {
			lb = fmt.Sprintf("%v", *lower.highest)

			if cmp(*lower.highest, *key) >= 0 {
				violated = true
			}
		}

		if upper.lowest != nil {
			ub = fmt.Sprintf("%v", *upper.lowest)

			if cmp(*key, *upper.lowest) >= 0 {
				violated = true
			}
		}

		if violated {
			return nil, &OverlapError{
				HasKey:     true,
				Key:        fmt.Sprintf("%v", *key),
				LowerBound: lb,
				UpperBound: ub,
			}
		}

		return wrap(join(lower.root, *key, upper.root), cmp), nil
	}

	if lower.highest != nil && upper.lowest != nil && cmp(*lower.highest, *upper.lowest) >= 0 {
		return nil, &OverlapError{
			HasKey:     false,
			LowerBound: fmt.Sprintf("%v", *lower.highest),
			UpperBound: fmt.Sprintf("%v", *upper.lowest),
		}
	}

	return wrap(join2(lower.root, upper.root), cmp), nil
}
