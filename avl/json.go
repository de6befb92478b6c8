package avl

import (
	"encoding/json"

	"github.com/qntx/avlset/container"
)

var (
	_ container.JSONCodec = (*Tree[int])(nil)
)

// MarshalJSON encodes the tree's values, in ascending order, as a JSON
// array. Time complexity: O(n).
func (t *Tree[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Values())
}

// UnmarshalJSON replaces the tree's contents with the values decoded from
// a JSON array, discarding any duplicates per the tree's usual semantics.
// Time complexity: O(n log n).
func (t *Tree[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	t.Clear()

	for _, v := range values {
		t.Insert(v)
	}

	return nil
}
