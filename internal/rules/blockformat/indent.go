package blockformat

import (
	"strings"

	"github.com/evanrichards/tree-styler-cs/internal/config"
	"github.com/evanrichards/tree-styler-cs/internal/syntax"
)

// indentingKinds are the constructs that add one indentation step to
// everything nested inside them: type and namespace bodies, statement
// blocks, switch bodies, and property accessor lists.
var indentingKinds = map[string]bool{
	"declaration_list": true,
	"block":            true,
	"switch_body":      true,
	"accessor_list":    true,
}

// computeIndent renders the indentation string for the given node's nesting
// depth. Blocks that form the body of a lambda or anonymous method get one
// extra step: such bodies are conventionally indented one level deeper than
// their lexical container.
func computeIndent(tree *syntax.Tree, node *syntax.Node, indent config.IndentConfig) string {
	steps := 0
	for _, anc := range tree.Ancestors(node) {
		if indentingKinds[anc.Kind] {
			steps++
		}
	}

	if parent := tree.ParentOf(node); parent != nil {
		switch parent.Kind {
		case "lambda_expression", "anonymous_method_expression":
			steps++
		}
	}

	return strings.Repeat(indent.Unit(), steps)
}
