package radix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qntx/avlset/radix"
)

func TestPrintableCapability(t *testing.T) {
	t.Parallel()

	tree := radix.New()
	assert.Equal(t, "RadixTree", tree.Name())
	assert.Empty(t, tree.Roots())

	tree.Insert("sum")
	tree.Insert("summer")

	roots := tree.Roots()
	assert.Len(t, roots, 1)

	root := roots[0]
	assert.Equal(t, "sum", root.Label())
	assert.False(t, root.Leaf())
	assert.Len(t, root.Children(), 2)
}
