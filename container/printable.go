package container

// Printable is the capability a tree-shaped container exposes to an
// external renderer. It is the only surface a printer may use; the
// renderer never reaches into a tree's internal node graph.
type Printable interface {
	// Name identifies the container for display purposes, e.g. "AVLTree".
	Name() string

	// IsEmpty reports whether the container has no elements to render.
	IsEmpty() bool

	// Roots returns the top-level nodes to render. Most containers have
	// exactly one; a bucketed structure (like a radix tree) may have many.
	Roots() []PrintableNode
}

// PrintableNode is a single renderable node in a Printable container.
type PrintableNode interface {
	// Label is the text to render for this node.
	Label() string

	// Leaf reports whether this node has no renderable children.
	Leaf() bool

	// Children returns the node's renderable children, in display order.
	Children() []PrintableNode
}
