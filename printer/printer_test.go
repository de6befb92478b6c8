package printer_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qntx/avlset/avl"
	"github.com/qntx/avlset/printer"
	"github.com/qntx/avlset/radix"
)

func TestSprintEmptyAVLTree(t *testing.T) {
	t.Parallel()

	tree := avl.New[int]()
	assert.Equal(t, "AVLTree[]", printer.Sprint(tree))
}

func TestSprintAVLTree(t *testing.T) {
	t.Parallel()

	tree := avl.New[int]()
	for _, v := range []int{1, 2, 3, 4, 5, 6, 7, 8} {
		tree.Insert(v)
	}

	out := printer.Sprint(tree)

	assert.True(t, strings.HasPrefix(out, "AVLTree\n"))
	assert.Contains(t, out, "└── ")

	for _, v := range []int{1, 2, 3, 4, 5, 6, 7, 8} {
		assert.Contains(t, out, strconv.Itoa(v))
	}
}

// TestSprintMatchesTreeStringOrientation pins printer.Sprint's output to an
// exact string on a fixed, perfectly-balanced tree, and checks it against
// avl.Tree.String's own output byte for byte: both must draw the right
// child above a node's own line and the left child below it, so rendering
// the same tree through either path must agree.
func TestSprintMatchesTreeStringOrientation(t *testing.T) {
	t.Parallel()

	tree := avl.New[int]()
	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(v)
	}

	want := "AVLTree\n" +
		"│       ┌── 7\n" +
		"│   ┌── 6\n" +
		"│   │   └── 5\n" +
		"└── 4\n" +
		"    │   ┌── 3\n" +
		"    └── 2\n" +
		"        └── 1\n"

	assert.Equal(t, want, tree.String())
	assert.Equal(t, tree.String(), printer.Sprint(tree))
}

func TestSprintEmptyRadixTree(t *testing.T) {
	t.Parallel()

	tree := radix.New()
	assert.Equal(t, "RadixTree[]", printer.Sprint(tree))
}

func TestSprintRadixTree(t *testing.T) {
	t.Parallel()

	tree := radix.New()
	tree.Insert("sum")
	tree.Insert("summer")

	out := printer.Sprint(tree)

	assert.True(t, strings.HasPrefix(out, "RadixTree\n"))
	assert.Contains(t, out, "sum")
	assert.Contains(t, out, "mer")
}

func TestFprintWritesSameAsSprint(t *testing.T) {
	t.Parallel()

	tree := avl.New[int]()
	tree.Insert(1)
	tree.Insert(2)

	var sb strings.Builder
	err := printer.Fprint(&sb, tree)

	assert.NoError(t, err)
	assert.Equal(t, printer.Sprint(tree), sb.String())
}
