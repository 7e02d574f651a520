package syntax

import "sort"

// Tree is an immutable snapshot of one parsed source file. Navigation maps
// (parents, token order) are built lazily and belong to the snapshot; a
// rewritten tree builds its own.
type Tree struct {
	Root   *Node
	Source []byte

	lineOffsets []int
	parents     map[Element]*Node
	tokens      []*Token
	tokenIndex  map[*Token]int
}

// NewTree wraps a root node and the source it was parsed from.
func NewTree(root *Node, source []byte) *Tree {
	return &Tree{Root: root, Source: source}
}

// Text renders the full tree back to source text. For an unedited tree the
// result is byte-identical to the input.
func (t *Tree) Text() string {
	return t.Root.Text()
}

// ParentOf returns the parent node of a node or token, or nil for the root.
func (t *Tree) ParentOf(e Element) *Node {
	t.ensureParents()
	return t.parents[e]
}

// Ancestors returns the chain of ancestor nodes from the immediate parent up
// to the root.
func (t *Tree) Ancestors(e Element) []*Node {
	var out []*Node
	for p := t.ParentOf(e); p != nil; p = t.ParentOf(p) {
		out = append(out, p)
	}
	return out
}

// NextToken returns the token following tok in source order, or nil at the
// end of the file.
func (t *Tree) NextToken(tok *Token) *Token {
	t.ensureTokens()
	i, ok := t.tokenIndex[tok]
	if !ok || i+1 >= len(t.tokens) {
		return nil
	}
	return t.tokens[i+1]
}

// PrevToken returns the token preceding tok in source order, or nil at the
// start of the file.
func (t *Tree) PrevToken(tok *Token) *Token {
	t.ensureTokens()
	i, ok := t.tokenIndex[tok]
	if !ok || i == 0 {
		return nil
	}
	return t.tokens[i-1]
}

// CoveringNode returns the deepest node whose span covers the given span, or
// nil when the span is outside the tree. Only meaningful on the snapshot the
// span was taken from.
func (t *Tree) CoveringNode(span Span) *Node {
	if !t.Root.Span.Covers(span) {
		return nil
	}
	best := t.Root
	for {
		descended := false
		for _, c := range best.Children {
			if v, ok := c.(*Node); ok && v.Span.Covers(span) {
				best = v
				descended = true
				break
			}
		}
		if !descended {
			return best
		}
	}
}

// PositionAt converts a byte offset into a 1-based line and column.
func (t *Tree) PositionAt(offset int) (line, col int) {
	t.ensureLineOffsets()
	i := sort.Search(len(t.lineOffsets), func(i int) bool {
		return t.lineOffsets[i] > offset
	})
	lineStart := t.lineOffsets[i-1]
	return i, offset - lineStart + 1
}

// LineAt returns the 1-based line number of a byte offset.
func (t *Tree) LineAt(offset int) int {
	line, _ := t.PositionAt(offset)
	return line
}

func (t *Tree) ensureLineOffsets() {
	if t.lineOffsets != nil {
		return
	}
	offsets := []int{0}
	for i, b := range t.Source {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	t.lineOffsets = offsets
}

func (t *Tree) ensureParents() {
	if t.parents != nil {
		return
	}
	t.parents = make(map[Element]*Node)
	var record func(n *Node)
	record = func(n *Node) {
		for _, c := range n.Children {
			t.parents[c] = n
			if v, ok := c.(*Node); ok {
				record(v)
			}
		}
	}
	record(t.Root)
}

func (t *Tree) ensureTokens() {
	if t.tokens != nil {
		return
	}
	t.tokens = t.Root.Tokens(nil)
	t.tokenIndex = make(map[*Token]int, len(t.tokens))
	for i, tok := range t.tokens {
		t.tokenIndex[tok] = i
	}
}
