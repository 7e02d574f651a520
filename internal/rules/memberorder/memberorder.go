// Package memberorder checks that members of a type are declared in
// decreasing order of visibility: public, internal, protected internal,
// protected, private.
package memberorder

import (
	"fmt"

	"github.com/evanrichards/tree-styler-cs/internal/analysis"
	"github.com/evanrichards/tree-styler-cs/internal/config"
	"github.com/evanrichards/tree-styler-cs/internal/syntax"
)

// memberGroup binds a declaration-kind label to the grammar kinds it covers.
// Each group is checked independently, so a field/method interleaving never
// cross-triggers.
type memberGroup struct {
	label string
	kinds []string
}

var memberGroups = []memberGroup{
	{label: "fields", kinds: []string{"field_declaration"}},
	{label: "delegates", kinds: []string{"delegate_declaration"}},
	{label: "events", kinds: []string{"event_field_declaration", "event_declaration"}},
	{label: "methods", kinds: []string{"method_declaration"}},
}

// declInfo is the per-declaration tuple computed fresh each pass: the
// resolved class, the modifier tokens found, and the declaration node.
type declInfo struct {
	access    Accessibility
	modifiers []*syntax.Token
	node      *syntax.Node
}

// Rule is the member-order check.
type Rule struct{}

// New returns the member-order rule.
func New() *Rule { return &Rule{} }

// ID returns the config key for this rule.
func (*Rule) ID() string { return "member-order" }

// Check walks every type body in the tree and reports adjacent-pair
// ordering violations per declaration kind.
func (r *Rule) Check(tree *syntax.Tree, _ *config.Config) []analysis.Diagnostic {
	var diags []analysis.Diagnostic
	tree.Root.Walk(func(n *syntax.Node) bool {
		if n.Kind == "declaration_list" {
			diags = append(diags, EvaluateOrdering(tree, n)...)
		}
		return true
	})
	return diags
}

// EvaluateOrdering checks the declarations of one container (a type body) and
// returns a diagnostic for every adjacent pair whose visibility regresses.
// Containers with zero or one declarations of a kind, and runs of equal
// visibility, produce nothing.
func EvaluateOrdering(tree *syntax.Tree, container *syntax.Node) []analysis.Diagnostic {
	var diags []analysis.Diagnostic
	for _, group := range memberGroups {
		members := container.ChildNodesOfKind(group.kinds...)
		if len(members) < 2 {
			continue
		}

		decls := make([]declInfo, len(members))
		for i, m := range members {
			mods := accessModifierTokens(m)
			decls[i] = declInfo{access: Resolve(mods), modifiers: mods, node: m}
		}

		for i := 0; i < len(decls)-1; i++ {
			cur, next := decls[i], decls[i+1]
			if next.access >= cur.access {
				continue
			}
			diags = append(diags, newOrderDiagnostic(tree, decls, cur, group.label))
		}
	}
	return diags
}

// newOrderDiagnostic anchors the report at the misplaced declaration's first
// access modifier (the declaration itself when it has none) and names the
// class it should be moved after.
func newOrderDiagnostic(tree *syntax.Tree, decls []declInfo, cur declInfo, label string) analysis.Diagnostic {
	span := cur.node.Span
	if len(cur.modifiers) > 0 {
		span = cur.modifiers[0].Span
	}
	line, col := tree.PositionAt(span.Start)

	curName := cur.access.String()
	afterName := nearestLowerPresent(decls, cur.access).String()

	return analysis.Diagnostic{
		RuleID:   "member-order",
		Severity: analysis.SeverityWarning,
		Span:     span,
		Line:     line,
		Column:   col,
		Message:  fmt.Sprintf("%s %s should come after %s %s", curName, label, afterName, label),
		Args:     []string{curName, afterName, label},
	}
}

// nearestLowerPresent returns the largest class strictly below access that is
// actually used in this sibling group: the closest acceptable predecessor the
// misplaced member can be moved after. When no lower class is present, Public
// acts as the sentinel.
func nearestLowerPresent(decls []declInfo, access Accessibility) Accessibility {
	best := Accessibility(-1)
	for _, d := range decls {
		if d.access < access && d.access > best {
			best = d.access
		}
	}
	if best < 0 {
		return Public
	}
	return best
}

// accessModifierTokens collects the declaration's access-modifier keyword
// tokens in source order, skipping non-access modifiers like static or
// readonly.
func accessModifierTokens(decl *syntax.Node) []*syntax.Token {
	var out []*syntax.Token
	for _, c := range decl.Children {
		var tok *syntax.Token
		switch v := c.(type) {
		case *syntax.Node:
			if v.Kind == "modifier" {
				tok = v.FirstToken()
			}
		case *syntax.Token:
			if v.Kind == "modifier" {
				tok = v
			}
		}
		if tok == nil {
			continue
		}
		switch tok.Text {
		case "public", "internal", "protected", "private":
			out = append(out, tok)
		}
	}
	return out
}
