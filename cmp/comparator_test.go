package cmp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	setcmp "github.com/qntx/avlset/cmp"
)

// TestGenericComparator verifies GenericComparator against ordered built-ins.
func TestGenericComparator(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, setcmp.GenericComparator(3, 3))
	assert.Equal(t, -1, setcmp.GenericComparator(1, 2))
	assert.Equal(t, 1, setcmp.GenericComparator("b", "a"))
}

// TestCompare verifies Compare's behavior with float64 values.
//
// Highlights strict comparison without epsilon, including NaN and ±0 cases.
func TestCompare(t *testing.T) {
	t.Parallel()

	a := 0.1
	b := 0.2
	sum := a + b

	tests := []struct {
		name string
		x    float64
		y    float64
		want int
	}{
		{name: "equal", x: 1.0, y: 1.0, want: 0},
		{name: "sum > 0.3", x: sum, y: 0.3, want: 1},
		{name: "0.3 < sum", x: 0.3, y: sum, want: -1},
		{name: "x > y", x: 2.0, y: 1.0, want: 1},
		{name: "x < y", x: 1.0, y: 2.0, want: -1},
		{name: "zero vs neg zero", x: 0.0, y: math.Copysign(0, -1), want: 0},
		{name: "NaN vs NaN", x: math.NaN(), y: math.NaN(), want: 0},
		{name: "NaN < non-NaN", x: math.NaN(), y: 1.0, want: -1},
		{name: "non-NaN > NaN", x: 1.0, y: math.NaN(), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, setcmp.Compare(tt.x, tt.y))
		})
	}
}

// TestCompareStrings verifies Compare's behavior with a non-floating type.
func TestCompareStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, setcmp.Compare("a", "a"))
	assert.Equal(t, -1, setcmp.Compare("a", "b"))
	assert.Equal(t, 1, setcmp.Compare("b", "a"))
}
