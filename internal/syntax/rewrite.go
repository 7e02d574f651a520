package syntax

// WithReplacements returns a new tree in which oldNode has been replaced by
// newNode and, optionally, oldTok by newTok (pass nil to skip either pair).
// Substitution is by identity: one full traversal compares each visited node
// and token against the captured originals by pointer, so every element that
// is not targeted is physically reused in the result and sibling order is
// untouched. Format-pending marks on the spliced subtree are cleared.
func (t *Tree) WithReplacements(oldNode, newNode *Node, oldTok, newTok *Token) *Tree {
	root := substitute(t.Root, oldNode, newNode, oldTok, newTok)
	return NewTree(root, t.Source)
}

// substitute rebuilds the spine above any replaced element and returns the
// node unchanged (same pointer) when nothing below it was touched.
func substitute(n *Node, oldNode, newNode *Node, oldTok, newTok *Token) *Node {
	if oldNode != nil && n == oldNode {
		return clearFormatPending(newNode)
	}

	var rebuilt []Element
	for i, c := range n.Children {
		var replacement Element
		switch v := c.(type) {
		case *Token:
			if oldTok != nil && v == oldTok {
				replacement = newTok
			}
		case *Node:
			if sub := substitute(v, oldNode, newNode, oldTok, newTok); sub != v {
				replacement = sub
			}
		}
		if replacement == nil {
			if rebuilt != nil {
				rebuilt = append(rebuilt, c)
			}
			continue
		}
		if rebuilt == nil {
			rebuilt = make([]Element, i, len(n.Children))
			copy(rebuilt, n.Children[:i])
		}
		rebuilt = append(rebuilt, replacement)
	}

	if rebuilt == nil {
		return n
	}
	out := *n
	out.Children = rebuilt
	return &out
}

// clearFormatPending strips construction-time format marks from a subtree so
// the spliced result behaves as literal text. Nodes without the mark are
// reused as-is.
func clearFormatPending(n *Node) *Node {
	var rebuilt []Element
	for i, c := range n.Children {
		v, ok := c.(*Node)
		if !ok {
			if rebuilt != nil {
				rebuilt = append(rebuilt, c)
			}
			continue
		}
		sub := clearFormatPending(v)
		if sub == v {
			if rebuilt != nil {
				rebuilt = append(rebuilt, c)
			}
			continue
		}
		if rebuilt == nil {
			rebuilt = make([]Element, i, len(n.Children))
			copy(rebuilt, n.Children[:i])
		}
		rebuilt = append(rebuilt, sub)
	}

	if rebuilt == nil && !n.FormatPending {
		return n
	}
	out := *n
	out.FormatPending = false
	if rebuilt != nil {
		out.Children = rebuilt
	}
	return &out
}

// ReplaceTokens rebuilds the subtree rooted at n with each key token in repl
// substituted by its value. Untouched children are reused. It is the same
// identity-keyed traversal the tree rewriter uses, scoped to one subtree;
// fixes use it to rebuild statements before splicing a whole block.
func ReplaceTokens(n *Node, repl map[*Token]*Token) *Node {
	if len(repl) == 0 {
		return n
	}

	var rebuilt []Element
	for i, c := range n.Children {
		var replacement Element
		switch v := c.(type) {
		case *Token:
			if nt, ok := repl[v]; ok {
				replacement = nt
			}
		case *Node:
			if sub := ReplaceTokens(v, repl); sub != v {
				replacement = sub
			}
		}
		if replacement == nil {
			if rebuilt != nil {
				rebuilt = append(rebuilt, c)
			}
			continue
		}
		if rebuilt == nil {
			rebuilt = make([]Element, i, len(n.Children))
			copy(rebuilt, n.Children[:i])
		}
		rebuilt = append(rebuilt, replacement)
	}

	if rebuilt == nil {
		return n
	}
	out := *n
	out.Children = rebuilt
	return &out
}
