package radix

import "github.com/qntx/avlset/strutil"

// Existence is the three-way outcome of a radix search.
type Existence int

const (
	// NotFound means the bucket for the needle's first byte is empty.
	NotFound Existence = iota
	// CanExist means the needle diverged from the tree mid-label, or at
	// a point where no matching child exists; the returned node is
	// where a subsequent insert would anchor.
	CanExist
	// Exists means the whole needle matched, either landing exactly on
	// a node boundary or as a strict prefix of that node's label.
	Exists
)

func (e Existence) String() string {
	switch e {
	case NotFound:
		return "NotFound"
	case CanExist:
		return "CanExist"
	case Exists:
		return "Exists"
	default:
		return "Existence(?)"
	}
}

// SearchResult reports how far a needle matched against the tree.
type SearchResult struct {
	Existence      Existence
	Path           string // the prefix spelled by the path to Node, if any
	LastSimilarity int    // bytes of Node's label that matched
	NextPosition   int    // index into the needle one past the last match

	node        *Node
	isSubstring bool
}

// searchFrom walks needle against the subtree rooted at root.
func searchFrom(root *Node, needle string) SearchResult {
	node := root
	pos := 0

	for {
		rest := needle[pos:]
		sim := strutil.CommonPrefixLen(node.label, rest)

		if sim < len(node.label) {
			if sim == len(rest) {
				return SearchResult{
					Existence:      Exists,
					isSubstring:    true,
					node:           node,
					Path:           pathString(node),
					LastSimilarity: sim,
					NextPosition:   pos + sim,
				}
			}

			return SearchResult{
				Existence:      CanExist,
				node:           node,
				Path:           pathString(node),
				LastSimilarity: sim,
				NextPosition:   pos + sim,
			}
		}

		pos += sim

		if pos == len(needle) {
			return SearchResult{
				Existence:      Exists,
				node:           node,
				Path:           pathString(node),
				LastSimilarity: sim,
				NextPosition:   pos,
			}
		}

		if node.children == nil {
			return SearchResult{
				Existence:      CanExist,
				node:           node,
				Path:           pathString(node),
				LastSimilarity: sim,
				NextPosition:   pos,
			}
		}

		child, found := node.children.FirstWhere(byFirstByte(needle[pos]))
		if !found {
			return SearchResult{
				Existence:      CanExist,
				node:           node,
				Path:           pathString(node),
				LastSimilarity: sim,
				NextPosition:   pos,
			}
		}

		node = child
	}
}
