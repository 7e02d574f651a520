// Package blockformat detects blocks written on a single source line and
// computes a minimal rewrite that moves the braces and statements onto their
// own lines, leaving the rest of the file untouched.
package blockformat

import (
	"github.com/evanrichards/tree-styler-cs/internal/analysis"
	"github.com/evanrichards/tree-styler-cs/internal/config"
	"github.com/evanrichards/tree-styler-cs/internal/syntax"
)

// Rule is the single-line block check and its fix.
type Rule struct{}

// New returns the block-format rule.
func New() *Rule { return &Rule{} }

// ID returns the config key for this rule.
func (*Rule) ID() string { return "block-format" }

// Check reports every block whose open and close braces share a source line.
func (r *Rule) Check(tree *syntax.Tree, _ *config.Config) []analysis.Diagnostic {
	var diags []analysis.Diagnostic
	tree.Root.Walk(func(n *syntax.Node) bool {
		if n.Kind != "block" {
			return true
		}
		open, close := braces(n)
		if open == nil || close == nil {
			return true
		}
		if tree.LineAt(open.Span.Start) != tree.LineAt(close.Span.Start) {
			return true
		}
		line, col := tree.PositionAt(open.Span.Start)
		diags = append(diags, analysis.Diagnostic{
			RuleID:   "block-format",
			Severity: analysis.SeverityWarning,
			Span:     open.Span,
			Line:     line,
			Column:   col,
			Message:  "block and its statements should not be placed on a single line",
		})
		return true
	})
	return diags
}

// Fix computes the corrected tree for one single-line-block diagnostic.
func (r *Rule) Fix(tree *syntax.Tree, d analysis.Diagnostic, cfg *config.Config) (*syntax.Tree, bool) {
	return ComputeFix(tree, d.Span, cfg)
}

// ComputeFix locates the block at the given span, synthesizes a correctly
// formatted replacement, and splices it into the tree with an
// identity-preserving rewrite. It returns false when the span does not
// resolve to a reformattable block; the caller must treat that as a no-op.
func ComputeFix(tree *syntax.Tree, span syntax.Span, cfg *config.Config) (*syntax.Tree, bool) {
	block := resolveBlock(tree, span)
	if block == nil {
		return nil, false
	}
	open, close := braces(block)
	if open == nil || close == nil {
		return nil, false
	}

	newBlock, oldPrev, newPrev := reformat(tree, block, cfg)
	return tree.WithReplacements(block, newBlock, oldPrev, newPrev), true
}

// reformat builds the replacement block value plus, when the token before the
// open brace ends on the brace's line, a rewritten copy of that token whose
// trailing trivia pushes the brace onto its own line.
func reformat(tree *syntax.Tree, block *syntax.Node, cfg *config.Config) (newBlock *syntax.Node, oldPrev, newPrev *syntax.Token) {
	containerIndent := computeIndent(tree, block, cfg.Indent)
	statementIndent := containerIndent + cfg.Indent.Unit()

	children := make([]syntax.Element, 0, len(block.Children))
	for _, c := range block.Children {
		switch v := c.(type) {
		case *syntax.Token:
			switch v.Text {
			case "{":
				children = append(children, formatOpenBrace(v, containerIndent))
			case "}":
				children = append(children, formatCloseBrace(tree, v, containerIndent))
			default:
				children = append(children, v)
			}
		case *syntax.Node:
			children = append(children, formatStatement(v, statementIndent))
		}
	}

	out := *block
	out.Children = children
	out.FormatPending = true

	open := block.FirstToken()
	prev := tree.PrevToken(open)
	if prev != nil && !prev.Trailing.ContainsNewline() && !open.Leading.ContainsNewline() {
		oldPrev = prev
		newPrev = prev.WithTrailing(prev.Trailing.TrimTrailingWhitespace().AppendNewline())
	}

	return &out, oldPrev, newPrev
}

// formatOpenBrace indents the brace and ends its line.
func formatOpenBrace(tok *syntax.Token, indent string) *syntax.Token {
	out := tok.WithLeading(tok.Leading.TrimTrailingWhitespace().AppendWhitespace(indent))
	return out.WithTrailing(oneLineBreak(out.Trailing))
}

// formatCloseBrace indents the brace and ends its line unless the next token
// in the file is a closing parenthesis, comma, or semicolon (the block is
// embedded in a larger single-statement expression where a forced break
// would be wrong), or when the trailing trivia already ends in a line break.
func formatCloseBrace(tree *syntax.Tree, tok *syntax.Token, indent string) *syntax.Token {
	out := tok.WithLeading(tok.Leading.TrimTrailingWhitespace().AppendWhitespace(indent))

	trailing := out.Trailing.TrimTrailingWhitespace()
	if !trailing.EndsWithNewline() && !breakSuppressedAfter(tree, tok) {
		trailing = trailing.AppendNewline()
	}
	return out.WithTrailing(trailing)
}

// formatStatement rebuilds one statement so that it starts on its own
// indented line and ends with a line break. The statement's internal
// structure is not otherwise altered.
func formatStatement(stmt *syntax.Node, indent string) *syntax.Node {
	first := stmt.FirstToken()
	last := stmt.LastToken()
	if first == nil || last == nil {
		return stmt
	}

	repl := make(map[*syntax.Token]*syntax.Token, 2)
	if first == last {
		out := first.WithLeading(first.Leading.TrimTrailingWhitespace().AppendWhitespace(indent))
		repl[first] = out.WithTrailing(oneLineBreak(out.Trailing))
	} else {
		repl[first] = first.WithLeading(first.Leading.TrimTrailingWhitespace().AppendWhitespace(indent))
		repl[last] = last.WithTrailing(oneLineBreak(last.Trailing))
	}
	return syntax.ReplaceTokens(stmt, repl)
}

// oneLineBreak trims trailing whitespace and guarantees the list ends with
// exactly one added line break. Re-running the formatter on already-correct
// trivia must not accumulate breaks.
func oneLineBreak(trivia syntax.TriviaList) syntax.TriviaList {
	trimmed := trivia.TrimTrailingWhitespace()
	if trimmed.EndsWithNewline() {
		return trimmed
	}
	return trimmed.AppendNewline()
}

// breakSuppressedAfter reports whether the token after the close brace makes
// a trailing line break wrong.
func breakSuppressedAfter(tree *syntax.Tree, close *syntax.Token) bool {
	next := tree.NextToken(close)
	if next == nil {
		return false
	}
	switch next.Text {
	case ")", ",", ";":
		return true
	}
	return false
}

// braces returns the block's open and close brace tokens, or nils when the
// node is not a well-formed block.
func braces(block *syntax.Node) (open, close *syntax.Token) {
	open = block.FirstToken()
	close = block.LastToken()
	if open == nil || close == nil || open.Text != "{" || close.Text != "}" {
		return nil, nil
	}
	return open, close
}

// resolveBlock maps a diagnostic span to the block node it was anchored at.
func resolveBlock(tree *syntax.Tree, span syntax.Span) *syntax.Node {
	n := tree.CoveringNode(span)
	for n != nil && n.Kind != "block" {
		n = tree.ParentOf(n)
	}
	return n
}
