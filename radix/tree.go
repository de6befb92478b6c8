package radix

import (
	"github.com/qntx/avlset/avl"
	"github.com/qntx/avlset/strutil"
)

// Tree is a radix tree: a map from a word's first byte (the bucket key)
// to the root node of that byte's bucket. Buckets are independent. The
// zero value is not usable; construct one with New.
type Tree struct {
	buckets map[byte]*Node
	len     int
}

// New creates an empty radix tree.
// Time complexity: O(1).
func New() *Tree {
	return &Tree{buckets: make(map[byte]*Node)}
}

// Len returns the number of distinct words stored.
// Time complexity: O(1).
func (t *Tree) Len() int {
	return t.len
}

// IsEmpty reports whether the tree holds no words.
// Time complexity: O(1).
func (t *Tree) IsEmpty() bool {
	return t.len == 0
}

// Clear drops every bucket.
// Time complexity: O(1).
func (t *Tree) Clear() {
	t.buckets = make(map[byte]*Node)
	t.len = 0
}

// Contains reports whether pre was inserted as a complete word, as
// opposed to merely being a prefix of one or more stored words.
// Time complexity: O(m log k), where m is the length of pre and k is the
// number of children examined at each step along the path.
func (t *Tree) Contains(pre string) bool {
	res := t.Search(pre)

	return res.Existence == Exists && !res.isSubstring && res.node.isWordBoundary()
}

// Search walks pre against the tree and reports how far it matched. If
// insertOn is given and equals the returned existence, and that
// existence is not Exists, pre is inserted as a side effect.
// Time complexity: O(m log k), where m is the length of pre and k is the
// number of children examined at each step along the path.
func (t *Tree) Search(pre string, insertOn ...Existence) SearchResult {
	pre = strutil.TrimWord(pre)

	var res SearchResult

	if pre == "" {
		res = SearchResult{Existence: NotFound}
	} else if root, ok := t.buckets[pre[0]]; !ok {
		res = SearchResult{Existence: NotFound}
	} else {
		res = searchFrom(root, pre)
	}

	if len(insertOn) > 0 && insertOn[0] == res.Existence && res.Existence != Exists {
		t.Insert(pre)
	}

	return res
}

// Insert inserts the trimmed, non-empty form of s. If returnPath is set
// and true, it returns the ordered sequence of labels traversed or
// created while placing s.
// Time complexity: O(m log k), where m is the length of s and k is the
// number of children examined at each step along the path.
func (t *Tree) Insert(s string, returnPath ...bool) []string {
	wantPath := len(returnPath) > 0 && returnPath[0]

	s = strutil.TrimWord(s)
	if s == "" {
		return nil
	}

	first := s[0]

	root, ok := t.buckets[first]
	if !ok {
		n := &Node{label: s}
		t.buckets[first] = n
		t.len++

		if wantPath {
			return []string{s}
		}

		return nil
	}

	res := searchFrom(root, s)

	switch {
	case res.Existence == Exists && !res.isSubstring && res.node.isWordBoundary():
		if wantPath {
			return pathSegments(res.node)
		}

		return nil

	case res.isSubstring || res.LastSimilarity < len(res.node.label):
		return t.splitInsert(res, s, wantPath)

	default:
		return t.appendInsert(res.node, s[res.NextPosition:], wantPath)
	}
}

// splitInsert handles the case where s diverges inside an existing
// node's label: the node is cut at the common prefix and two children
// are created under a new internal node.
func (t *Tree) splitInsert(res SearchResult, s string, wantPath bool) []string {
	node := res.node

	common := node.label[:res.LastSimilarity]
	tailOld := node.label[res.LastSimilarity:]

	cutAt := res.LastSimilarity
	if res.NextPosition > cutAt {
		cutAt = res.NextPosition
	}

	tailNew := s[cutAt:]

	parent := node.parent
	if parent != nil {
		parent.children.Remove(node)
	}

	node.label = tailOld

	c := &Node{label: common, parent: parent, children: newAVLSet()}
	node.parent = c
	c.children.Insert(node)

	sibling := &Node{label: tailNew, parent: c}
	c.children.Insert(sibling)

	if parent != nil {
		parent.children.Insert(c)
	} else {
		t.buckets[c.label[0]] = c
	}

	t.len++

	if wantPath {
		return pathSegments(sibling)
	}

	return nil
}

// appendInsert handles the case where s extends past node's label
// entirely: a new child is appended, with a terminator sentinel added
// if node was previously a leaf whose path was itself a stored word.
func (t *Tree) appendInsert(node *Node, tail string, wantPath bool) []string {
	newChild := &Node{label: tail, parent: node}

	wasLeaf := node.isLeaf()
	node.ensureChildren().Insert(newChild)

	if wasLeaf {
		node.ensureChildren().Insert(&Node{label: "", parent: node})
	}

	t.len++

	if wantPath {
		return pathSegments(newChild)
	}

	return nil
}

// GetPossibleSuffix returns every stored word beginning with pre. Within
// a bucket results are in ascending label order; with an empty prefix,
// buckets are visited in map order (unordered across buckets).
// Time complexity: O(m log k + w), where m is the length of pre, k is the
// number of children examined at each step along the path, and w is the
// total length of the words returned.
func (t *Tree) GetPossibleSuffix(pre string) []string {
	pre = strutil.TrimWord(pre)

	if pre == "" {
		var out []string

		for _, root := range t.buckets {
			out = append(out, collectWords(root, pathString(root))...)
		}

		return out
	}

	root, ok := t.buckets[pre[0]]
	if !ok {
		return nil
	}

	res := searchFrom(root, pre)
	if res.Existence != Exists {
		return nil
	}

	return collectWords(res.node, pathString(res.node))
}

func collectWords(node *Node, pathSoFar string) []string {
	if node.isLeaf() {
		return []string{pathSoFar}
	}

	var out []string

	for _, child := range node.children.Ordered(avl.InOrder) {
		if child.label == "" {
			out = append(out, pathSoFar)
			continue
		}

		out = append(out, collectWords(child, pathSoFar+child.label)...)
	}

	return out
}

func countWords(node *Node) int {
	if node.isLeaf() {
		return 1
	}

	n := 0

	for _, child := range node.children.Ordered(avl.InOrder) {
		if child.label == "" {
			n++
			continue
		}

		n += countWords(child)
	}

	return n
}

// Delete removes the word equal to pre. If pre is only a strict prefix
// of stored words (it ends inside a label, or on an internal node that is
// not itself a stored word), it is a no-op unless deleteIfSubstring
// is set, in which case the entire subtree rooted where pre terminates
// is removed. Reports whether anything was removed.
// Time complexity: O(m log k) to locate pre, plus O(s) when
// deleteIfSubstring removes a subtree of s descendant words.
func (t *Tree) Delete(pre string, deleteIfSubstring bool) bool {
	pre = strutil.TrimWord(pre)
	if pre == "" {
		return false
	}

	root, ok := t.buckets[pre[0]]
	if !ok {
		return false
	}

	res := searchFrom(root, pre)
	if res.Existence != Exists {
		return false
	}

	if res.isSubstring {
		if !deleteIfSubstring {
			return false
		}

		removed := countWords(res.node)
		t.removeSubtree(res.node, pre[0])
		t.len -= removed

		return true
	}

	node := res.node
	if !node.isWordBoundary() {
		if !deleteIfSubstring {
			return false
		}

		removed := countWords(node)
		t.removeSubtree(node, pre[0])
		t.len -= removed

		return true
	}

	if !node.isLeaf() {
		node.children.Remove(&Node{label: ""})

		switch node.children.Len() {
		case 0:
			node.children = nil
		case 1:
			t.compact(node)
		}

		t.len--

		return true
	}

	t.removeSubtree(node, pre[0])
	t.len--

	return true
}

// removeSubtree detaches node from its parent (or drops its bucket),
// compacting the parent if it is left with a single child.
func (t *Tree) removeSubtree(node *Node, bucketKey byte) {
	parent := node.parent
	if parent == nil {
		delete(t.buckets, bucketKey)
		return
	}

	parent.children.Remove(node)

	switch parent.children.Len() {
	case 0:
		parent.children = nil
	case 1:
		t.compact(parent)
	}
}

// compact merges node with its single remaining child, adopting the
// child's grandchildren, after node's parent (if removing node's sibling
// left it with exactly one child).
func (t *Tree) compact(node *Node) {
	only, _ := node.children.Lowest()

	parent := node.parent
	if parent != nil {
		parent.children.Remove(node)
	}

	node.label += only.label
	node.children = only.children

	if node.children != nil {
		for _, gc := range node.children.Ordered(avl.InOrder) {
			gc.parent = node
		}
	}

	if parent != nil {
		parent.children.Insert(node)
	}
}
