package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qntx/avlset/avl"
)

func treeOf(values ...int) *avl.Tree[int] {
	tree := avl.New[int]()
	for _, v := range values {
		tree.Insert(v)
	}

	return tree
}

func TestSplitTreePresent(t *testing.T) {
	t.Parallel()

	tree := treeOf(8, 5, 11, 6, 9, 4, 14)

	left, present, right := avl.SplitTree(tree, 5)

	assert.True(t, present)
	assert.Equal(t, []int{4}, left.Ordered(avl.InOrder))
	assert.Equal(t, []int{6, 8, 9, 11, 14}, right.Ordered(avl.InOrder))
}

func TestSplitTreeEmpty(t *testing.T) {
	t.Parallel()

	tree := avl.New[int]()

	left, present, right := avl.SplitTree(tree, 5)

	assert.False(t, present)
	assert.True(t, left.IsEmpty())
	assert.True(t, right.IsEmpty())
}

func TestJoinTreesWithKey(t *testing.T) {
	t.Parallel()

	a := treeOf(6, 4, 9, 8, 12)
	b := treeOf(16)

	key := 15

	joined, err := avl.JoinTrees(a, &key, b)
	require.NoError(t, err)

	assert.Equal(t, []int{9, 6, 4, 8, 15, 12, 16}, joined.Ordered(avl.PreOrder))
}

func TestJoinTreesOverlapError(t *testing.T) {
	t.Parallel()

	a := treeOf(2, 10)
	b := treeOf(7)

	key := 8

	_, err := avl.JoinTrees(a, &key, b)
	require.Error(t, err)

	var overlapErr *avl.OverlapError

	require.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, "8", overlapErr.Key)
	assert.Equal(t, "10", overlapErr.LowerBound)
	assert.Equal(t, "7", overlapErr.UpperBound)
	assert.Contains(t, err.Error(), `"8"`)
	assert.Contains(t, err.Error(), "must be greater than")
}

func TestJoinTreesWithoutKeyOverlapError(t *testing.T) {
	t.Parallel()

	a := treeOf(1, 2, 10)
	b := treeOf(5, 20)

	_, err := avl.JoinTrees(a, nil, b)
	require.Error(t, err)

	var overlapErr *avl.OverlapError

	require.ErrorAs(t, err, &overlapErr)
	assert.False(t, overlapErr.HasKey)
	assert.Equal(t, "10", overlapErr.LowerBound)
	assert.Equal(t, "5", overlapErr.UpperBound)
	assert.Contains(t, err.Error(), "lowerbound")
}

func TestJoinTreesJoin2(t *testing.T) {
	t.Parallel()

	a := treeOf(1, 2, 3)
	b := treeOf(10, 20, 30)

	joined, err := avl.JoinTrees(a, nil, b)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 10, 20, 30}, joined.Ordered(avl.InOrder))
}

func TestSetOperations(t *testing.T) {
	t.Parallel()

	a := treeOf(1, 2, 3, 4)
	b := treeOf(3, 4, 5, 6)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, a.Union(b).Ordered(avl.InOrder))
	assert.Equal(t, []int{3, 4}, a.Intersection(b).Ordered(avl.InOrder))
	assert.Equal(t, []int{1, 2}, a.Difference(b).Ordered(avl.InOrder))
}

func TestSetOperationIdempotence(t *testing.T) {
	t.Parallel()

	a := treeOf(1, 2, 3, 4, 5)

	assert.Equal(t, a.Ordered(avl.InOrder), a.Union(treeOf(1, 2, 3, 4, 5)).Ordered(avl.InOrder))
	assert.Equal(t, a.Ordered(avl.InOrder), a.Intersection(treeOf(1, 2, 3, 4, 5)).Ordered(avl.InOrder))
	assert.True(t, a.Difference(treeOf(1, 2, 3, 4, 5)).IsEmpty())
}

func TestSplitJoinRoundTrip(t *testing.T) {
	t.Parallel()

	tree := treeOf(8, 5, 11, 6, 9, 4, 14, 20, 1)

	key := 7

	left, present, right := avl.SplitTree(tree, key)
	assert.False(t, present)

	joined, err := avl.JoinTrees(left, &key, right)
	require.NoError(t, err)

	want := append([]int{1, 4, 5, 6}, append([]int{7}, []int{8, 9, 11, 14, 20}...)...)
	assert.Equal(t, want, joined.Ordered(avl.InOrder))

	leftOnly, present2, rightOnly := avl.SplitTree(treeOf(8, 5, 11, 6, 9, 4, 14, 20, 1), key)
	assert.False(t, present2)

	joined2, err := avl.JoinTrees(leftOnly, nil, rightOnly)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 5, 6, 8, 9, 11, 14, 20}, joined2.Ordered(avl.InOrder))
}
