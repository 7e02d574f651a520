package memberorder

import (
	"fmt"
	"strings"
	"testing"

	"github.com/evanrichards/tree-styler-cs/internal/config"
	"github.com/evanrichards/tree-styler-cs/internal/syntax"
)

func parseSource(t *testing.T, content string) *syntax.Tree {
	t.Helper()
	tree, err := syntax.Parse([]byte(content))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	return tree
}

func checkTree(t *testing.T, content string) []string {
	t.Helper()
	tree := parseSource(t, content)
	diags := New().Check(tree, config.DefaultConfig())
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = strings.Join(d.Args, "|")
	}
	return out
}

// memberKindTemplates render one member declaration per checked kind.
var memberKindTemplates = []struct {
	label  string
	member func(modifier, name string) string
}{
	{"fields", func(m, n string) string {
		return strings.TrimSpace(m + " int " + n + ";")
	}},
	{"methods", func(m, n string) string {
		return strings.TrimSpace(m + " void " + n + "() { }")
	}},
	{"delegates", func(m, n string) string {
		return strings.TrimSpace(m + " delegate void " + n + "();")
	}},
	{"events", func(m, n string) string {
		return strings.TrimSpace(m + " event Action " + n + ";")
	}},
}

func classWith(members ...string) string {
	var b strings.Builder
	b.WriteString("class Foo\n{\n")
	for _, m := range members {
		b.WriteString("    " + m + "\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// TestOrderingMatrix covers every inverted modifier pair for every checked
// declaration kind: exactly one diagnostic, anchored at the first member,
// naming the first member's class (private when absent), the class it must
// move after, and the kind label.
func TestOrderingMatrix(t *testing.T) {
	pairs := []struct {
		first  string // modifier of the misplaced earlier member
		second string // less restrictive modifier that follows it
	}{
		{"", "protected"},
		{"", "protected internal"},
		{"", "internal"},
		{"", "public"},
		{"private", "protected"},
		{"private", "protected internal"},
		{"private", "internal"},
		{"private", "public"},
		{"protected", "protected internal"},
		{"protected", "internal"},
		{"protected", "public"},
		{"protected internal", "internal"},
		{"protected internal", "public"},
		{"internal", "public"},
	}

	for _, kind := range memberKindTemplates {
		for _, pair := range pairs {
			firstName := pair.first
			if firstName == "" {
				firstName = "private"
			}
			name := fmt.Sprintf("%s_%s_then_%s", kind.label,
				strings.ReplaceAll(firstName, " ", "_"),
				strings.ReplaceAll(pair.second, " ", "_"))

			t.Run(name, func(t *testing.T) {
				content := classWith(
					kind.member(pair.first, "First"),
					kind.member(pair.second, "Second"),
				)
				tree := parseSource(t, content)
				diags := New().Check(tree, config.DefaultConfig())

				if len(diags) != 1 {
					t.Fatalf("Got %d diagnostics, want 1\nsource:\n%s", len(diags), content)
				}
				d := diags[0]

				want := []string{firstName, pair.second, kind.label}
				if strings.Join(d.Args, "|") != strings.Join(want, "|") {
					t.Errorf("Args %v, want %v", d.Args, want)
				}
				if d.Line != 3 || d.Column != 5 {
					t.Errorf("Anchored at %d:%d, want 3:5", d.Line, d.Column)
				}
				if d.RuleID != "member-order" {
					t.Errorf("RuleID %q", d.RuleID)
				}
			})
		}
	}
}

func TestNoDiagnosticsWhenOrdered(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "full_order",
			content: classWith(
				"public int A;",
				"internal int B;",
				"protected internal int C;",
				"protected int D;",
				"private int E;",
				"int F;",
			),
		},
		{
			name: "equal_run",
			content: classWith(
				"private int A;",
				"private int B;",
				"int C;",
			),
		},
		{
			name:    "single_member",
			content: classWith("public int A;"),
		},
		{
			name:    "empty_type",
			content: "class Foo\n{\n}\n",
		},
		{
			name: "kinds_do_not_cross_trigger",
			content: classWith(
				"private int A;",
				"public void B() { }",
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diags := checkTree(t, tt.content); len(diags) != 0 {
				t.Errorf("Got %d diagnostics, want 0: %v", len(diags), diags)
			}
		})
	}
}

func TestViolationsReportedPerPair(t *testing.T) {
	content := classWith(
		"private int A;",
		"public int B;",
		"internal int C;",
		"public int D;",
	)
	got := checkTree(t, content)
	want := []string{
		"private|internal|fields",
		"internal|public|fields",
	}
	if len(got) != len(want) {
		t.Fatalf("Got %d diagnostics, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Diagnostic %d args %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIndependentContainers(t *testing.T) {
	content := `class A
{
    private int X;
    public int Y;
}

class B
{
    public int X;
    private int Y;
}
`
	got := checkTree(t, content)
	if len(got) != 1 {
		t.Fatalf("Got %d diagnostics, want 1: %v", len(got), got)
	}
	if got[0] != "private|public|fields" {
		t.Errorf("Args %q", got[0])
	}
}

func TestNestedTypeCheckedSeparately(t *testing.T) {
	content := `class Outer
{
    public int A;

    class Inner
    {
        private int B;
        public int C;
    }
}
`
	got := checkTree(t, content)
	if len(got) != 1 {
		t.Fatalf("Got %d diagnostics, want 1: %v", len(got), got)
	}
}
