package syntax

import (
	"context"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
)

// Parser pool to avoid recreating parsers across files.
var parserPool = sync.Pool{
	New: func() interface{} {
		parser := sitter.NewParser()
		parser.SetLanguage(csharp.GetLanguage())
		return parser
	},
}

// ParseError reports the first location at which the source could not be
// parsed as C#.
type ParseError struct {
	Offset int
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d", e.Line, e.Column)
}

// Parse parses C# source into an immutable tree snapshot. Comments in the
// grammar's concrete tree are absorbed into token trivia, and every byte of
// gap text between tokens is attached as trivia, so Text() on the result
// reproduces the input exactly.
func Parse(content []byte) (*Tree, error) {
	parser := parserPool.Get().(*sitter.Parser)
	defer parserPool.Put(parser)

	cst, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}

	rootNode := cst.RootNode()
	if rootNode.HasError() {
		offset := firstErrorOffset(rootNode)
		tmp := NewTree(&Node{}, content)
		line, col := tmp.PositionAt(offset)
		return nil, &ParseError{Offset: offset, Line: line, Column: col}
	}

	root := buildNode(rootNode, content)
	attachTrivia(root, content)
	return NewTree(root, content), nil
}

// buildNode converts a concrete-syntax node into our tree model. Leaves
// become tokens; comment nodes are dropped here and recovered as trivia by
// attachTrivia.
func buildNode(n *sitter.Node, content []byte) *Node {
	node := &Node{
		Kind: n.Type(),
		Span: Span{Start: int(n.StartByte()), End: int(n.EndByte())},
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() == "comment" {
			continue
		}
		if child.ChildCount() == 0 {
			node.Children = append(node.Children, &Token{
				Kind: child.Type(),
				Text: string(content[child.StartByte():child.EndByte()]),
				Span: Span{Start: int(child.StartByte()), End: int(child.EndByte())},
			})
			continue
		}
		node.Children = append(node.Children, buildNode(child, content))
	}

	return node
}

// attachTrivia distributes every byte outside token text onto the
// surrounding tokens. Trailing trivia of a token runs up to and including
// the first line break after it; the remainder becomes the next token's
// leading trivia. The first token owns the file prefix and the last token
// owns the file suffix.
func attachTrivia(root *Node, content []byte) {
	tokens := root.Tokens(nil)
	if len(tokens) == 0 {
		return
	}

	tokens[0].Leading = scanTrivia(string(content[:tokens[0].Span.Start]))

	for i := 0; i < len(tokens)-1; i++ {
		gap := string(content[tokens[i].Span.End:tokens[i+1].Span.Start])
		trailing, leading := splitGap(scanTrivia(gap))
		tokens[i].Trailing = trailing
		tokens[i+1].Leading = leading
	}

	last := tokens[len(tokens)-1]
	last.Trailing = scanTrivia(string(content[last.Span.End:]))
}

// firstErrorOffset finds the byte offset of the first error or missing node.
func firstErrorOffset(n *sitter.Node) int {
	if n.Type() == "ERROR" || n.IsMissing() {
		return int(n.StartByte())
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.HasError() || child.IsMissing() {
			return firstErrorOffset(child)
		}
	}
	return int(n.StartByte())
}
