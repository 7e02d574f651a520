package syntax

import "strings"

// Element is a child position in the tree: either a *Node or a *Token.
type Element interface {
	isElement()
}

// SpanOf returns the source span of a node or token.
func SpanOf(e Element) Span {
	switch v := e.(type) {
	case *Node:
		return v.Span
	case *Token:
		return v.Span
	}
	return Span{}
}

// Node is an immutable structural construct with an ordered sequence of
// child nodes and tokens. Kind is the grammar's node type string (e.g.
// "class_declaration", "block", "modifier").
type Node struct {
	Kind     string
	Children []Element
	Span     Span

	// FormatPending marks a node synthesized by a fix as not yet spliced
	// into a tree. The rewriter clears it so the result behaves as literal
	// text rather than a pending-format request.
	FormatPending bool
}

// FirstToken returns the first token in the subtree, or nil for an empty node.
func (n *Node) FirstToken() *Token {
	for _, c := range n.Children {
		switch v := c.(type) {
		case *Token:
			return v
		case *Node:
			if t := v.FirstToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

// LastToken returns the last token in the subtree, or nil for an empty node.
func (n *Node) LastToken() *Token {
	for i := len(n.Children) - 1; i >= 0; i-- {
		switch v := n.Children[i].(type) {
		case *Token:
			return v
		case *Node:
			if t := v.LastToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

// Tokens appends all tokens in the subtree, in source order, to dst.
func (n *Node) Tokens(dst []*Token) []*Token {
	for _, c := range n.Children {
		switch v := c.(type) {
		case *Token:
			dst = append(dst, v)
		case *Node:
			dst = v.Tokens(dst)
		}
	}
	return dst
}

// ChildNodes returns the direct child nodes, skipping tokens.
func (n *Node) ChildNodes() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if v, ok := c.(*Node); ok {
			out = append(out, v)
		}
	}
	return out
}

// ChildNodesOfKind returns direct child nodes whose kind is one of kinds.
func (n *Node) ChildNodesOfKind(kinds ...string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		v, ok := c.(*Node)
		if !ok {
			continue
		}
		for _, k := range kinds {
			if v.Kind == k {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// FindChildNode returns the first direct child node of the given kind.
func (n *Node) FindChildNode(kind string) *Node {
	for _, c := range n.Children {
		if v, ok := c.(*Node); ok && v.Kind == kind {
			return v
		}
	}
	return nil
}

// Walk calls fn for every node in the subtree, including n itself, in
// depth-first source order. Returning false stops descent into that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		if v, ok := c.(*Node); ok {
			v.Walk(fn)
		}
	}
}

// Text renders the subtree: leading trivia + text + trailing trivia for
// every token, in order.
func (n *Node) Text() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n *Node) writeTo(b *strings.Builder) {
	for _, c := range n.Children {
		switch v := c.(type) {
		case *Token:
			b.WriteString(v.Leading.Text())
			b.WriteString(v.Text)
			b.WriteString(v.Trailing.Text())
		case *Node:
			v.writeTo(b)
		}
	}
}

func (n *Node) isElement() {}
