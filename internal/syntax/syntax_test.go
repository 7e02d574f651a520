package syntax

import (
	"strings"
	"testing"
)

func parseSource(t *testing.T, content string) *Tree {
	t.Helper()
	tree, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	return tree
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "class_with_members",
			content: `class Foo
{
    private int count;

    public void Bar()
    {
        count++;
    }
}
`,
		},
		{
			name: "comments_preserved",
			content: `// header comment
class Foo
{
    /* block */ int x; // trailing
}
`,
		},
		{
			name:    "single_line",
			content: `class Foo { int x; }`,
		},
		{
			name: "crlf_line_endings",
			content: "class Foo\r\n{\r\n    int x;\r\n}\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parseSource(t, tt.content)
			if got := tree.Text(); got != tt.content {
				t.Errorf("Text() = %q, want %q", got, tt.content)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse([]byte("class Foo {"))
	if err == nil {
		t.Fatal("Expected parse error for unterminated class body")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
	if perr.Line < 1 || perr.Column < 1 {
		t.Errorf("Parse error location %d:%d not 1-based", perr.Line, perr.Column)
	}
}

func TestTokenNavigation(t *testing.T) {
	tree := parseSource(t, "class Foo { int x; }")

	tokens := tree.Root.Tokens(nil)
	wantTexts := []string{"class", "Foo", "{", "int", "x", ";", "}"}
	if len(tokens) != len(wantTexts) {
		t.Fatalf("Got %d tokens, want %d", len(tokens), len(wantTexts))
	}
	for i, want := range wantTexts {
		if tokens[i].Text != want {
			t.Errorf("Token %d: %q, want %q", i, tokens[i].Text, want)
		}
	}

	if next := tree.NextToken(tokens[2]); next != tokens[3] {
		t.Error("NextToken after { is not int")
	}
	if prev := tree.PrevToken(tokens[2]); prev != tokens[1] {
		t.Error("PrevToken before { is not Foo")
	}
	if tree.PrevToken(tokens[0]) != nil {
		t.Error("PrevToken at file start should be nil")
	}
	if tree.NextToken(tokens[len(tokens)-1]) != nil {
		t.Error("NextToken at file end should be nil")
	}
}

func TestParentsAndAncestors(t *testing.T) {
	tree := parseSource(t, "class Foo { int x; }")

	var field *Node
	tree.Root.Walk(func(n *Node) bool {
		if n.Kind == "field_declaration" {
			field = n
		}
		return true
	})
	if field == nil {
		t.Fatal("No field_declaration found")
	}

	parent := tree.ParentOf(field)
	if parent == nil || parent.Kind != "declaration_list" {
		t.Fatalf("Parent of field is %v, want declaration_list", parent)
	}

	ancestors := tree.Ancestors(field)
	kinds := make([]string, len(ancestors))
	for i, a := range ancestors {
		kinds[i] = a.Kind
	}
	want := []string{"declaration_list", "class_declaration", "compilation_unit"}
	if strings.Join(kinds, ",") != strings.Join(want, ",") {
		t.Errorf("Ancestor kinds %v, want %v", kinds, want)
	}

	if tree.ParentOf(tree.Root) != nil {
		t.Error("Root should have no parent")
	}
}

func TestCoveringNode(t *testing.T) {
	tree := parseSource(t, "class Foo { int x; }")

	var field *Node
	tree.Root.Walk(func(n *Node) bool {
		if n.Kind == "field_declaration" {
			field = n
		}
		return true
	})

	got := tree.CoveringNode(field.Span)
	if got == nil {
		t.Fatal("CoveringNode returned nil")
	}
	// The deepest node covering the field's span is the field itself or
	// something inside it; walking up must reach the field.
	for got != nil && got != field {
		got = tree.ParentOf(got)
	}
	if got != field {
		t.Error("CoveringNode result is not inside the field declaration")
	}

	if tree.CoveringNode(Span{Start: -10, End: -5}) != nil {
		t.Error("CoveringNode outside the tree should be nil")
	}
}

func TestPositionAt(t *testing.T) {
	tree := parseSource(t, "class Foo\n{\n    int x;\n}\n")

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{offset: 0, wantLine: 1, wantCol: 1},
		{offset: 10, wantLine: 2, wantCol: 1},
		{offset: 16, wantLine: 3, wantCol: 5},
	}
	for _, tt := range tests {
		line, col := tree.PositionAt(tt.offset)
		if line != tt.wantLine || col != tt.wantCol {
			t.Errorf("PositionAt(%d) = %d:%d, want %d:%d",
				tt.offset, line, col, tt.wantLine, tt.wantCol)
		}
	}
}

func TestCommentsBecomeTrivia(t *testing.T) {
	tree := parseSource(t, "class Foo\n{\n    // note\n    int x; // same line\n}\n")

	for _, tok := range tree.Root.Tokens(nil) {
		if tok.Kind == "comment" {
			t.Fatalf("Comment surfaced as a token: %q", tok.Text)
		}
	}

	var field *Node
	tree.Root.Walk(func(n *Node) bool {
		if n.Kind == "field_declaration" {
			field = n
		}
		return true
	})
	first := field.FirstToken()
	if !strings.Contains(first.Leading.Text(), "// note") {
		t.Errorf("Leading trivia %q does not carry the standalone comment", first.Leading.Text())
	}
	last := field.LastToken()
	if !strings.Contains(last.Trailing.Text(), "// same line") {
		t.Errorf("Trailing trivia %q does not carry the inline comment", last.Trailing.Text())
	}
}
