// Package container holds the small capability interfaces shared by the
// tree-shaped containers in this module (avl.Tree, radix.Tree): a
// JSON (de)serialization contract here, and the Printable/PrintableNode
// rendering contract in printable.go.
package container

import "encoding/json"

// JSONCodec defines an interface for containers that support both JSON
// serialization and deserialization. It combines the Marshaler and
// Unmarshaler interfaces for convenience; avl.Tree satisfies it by
// marshaling its ascending-order values as a JSON array.
//
// This interface is optional and may be implemented as needed.
type JSONCodec interface {
	json.Marshaler
	json.Unmarshaler
}
