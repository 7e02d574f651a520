// Package analysis defines the diagnostic model and the rule interfaces the
// processor runs against parsed trees.
package analysis

import (
	"github.com/evanrichards/tree-styler-cs/internal/config"
	"github.com/evanrichards/tree-styler-cs/internal/syntax"
)

// Rule checks one style concern against a tree snapshot. Check must be a
// pure function of its inputs: no shared state, safe to invoke concurrently
// across files.
type Rule interface {
	// ID returns the config key for this rule (e.g., "member-order").
	ID() string

	// Check returns all violations found in the tree, in source order.
	Check(tree *syntax.Tree, cfg *config.Config) []Diagnostic
}

// Fixer is implemented by rules that can compute a corrected tree for one of
// their diagnostics. Fix returns the new tree and true, or false when the
// diagnostic's location does not resolve to something fixable. A false
// return is a no-op for the caller, never an error.
type Fixer interface {
	Fix(tree *syntax.Tree, d Diagnostic, cfg *config.Config) (*syntax.Tree, bool)
}

var rules []Rule

// Register adds a rule to the registry. Rules run in registration order.
func Register(r Rule) {
	rules = append(rules, r)
}

// Rules returns all registered rules in execution order.
func Rules() []Rule {
	return rules
}
