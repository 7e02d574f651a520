// Package processor orchestrates the per-file pipeline: parse, run rules,
// apply fixes, and write or report the result.
package processor

import (
	"fmt"
	"os"

	"github.com/evanrichards/tree-styler-cs/internal/analysis"
	"github.com/evanrichards/tree-styler-cs/internal/config"
	"github.com/evanrichards/tree-styler-cs/internal/syntax"
)

// maxFixPasses bounds the fix loop. Each pass applies one fix and reparses,
// so the bound only matters for pathological inputs.
const maxFixPasses = 25

// Options holds the per-run processing switches. Check only reports
// diagnostics; Write applies fixes to files in place; with neither set the
// fixes are computed but not written (dry run).
type Options struct {
	Check   bool
	Write   bool
	Config  *config.Config
	Workers int
	Verbose bool
}

// Result contains the outcome of processing one file.
type Result struct {
	// Diagnostics found in the final content, in source order.
	Diagnostics []analysis.Diagnostic
	// FixesApplied is the number of fixes spliced in.
	FixesApplied int
	// Changed reports whether the fixed content differs from the original.
	Changed bool
	// Original and Fixed are the before/after file contents.
	Original []byte
	Fixed    []byte
}

// ProcessFile reads and processes a single file. In write mode the corrected
// content is written back in place.
func ProcessFile(path string, opts Options) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading file: %w", err)
	}

	result, err := ProcessContent(content, opts)
	if err != nil {
		return result, err
	}

	if opts.Write && result.Changed {
		if err := os.WriteFile(path, result.Fixed, 0o600); err != nil {
			return result, fmt.Errorf("writing file: %w", err)
		}
	}
	return result, nil
}

// ProcessContent runs the enabled rules over one source buffer. Outside
// check mode it repeatedly applies the first available fix, renders the
// rewritten tree, and reparses, so every fix operates on its own consistent
// snapshot.
func ProcessContent(content []byte, opts Options) (Result, error) {
	result := Result{Original: content, Fixed: content}

	tree, err := syntax.Parse(content)
	if err != nil {
		return result, fmt.Errorf("parsing content: %w", err)
	}

	diags := runRules(tree, opts.Config)

	if !opts.Check {
		for pass := 0; pass < maxFixPasses; pass++ {
			fixed, ok := applyFirstFix(tree, diags, opts.Config)
			if !ok {
				break
			}
			result.FixesApplied++

			content = []byte(fixed.Text())
			tree, err = syntax.Parse(content)
			if err != nil {
				return result, fmt.Errorf("reparsing fixed content: %w", err)
			}
			diags = runRules(tree, opts.Config)
		}
		result.Fixed = content
		result.Changed = string(result.Fixed) != string(result.Original)
	}

	result.Diagnostics = diags
	return result, nil
}

// runRules executes every enabled registered rule against the tree.
func runRules(tree *syntax.Tree, cfg *config.Config) []analysis.Diagnostic {
	var diags []analysis.Diagnostic
	for _, rule := range analysis.Rules() {
		if !cfg.RuleEnabled(rule.ID()) {
			continue
		}
		diags = append(diags, rule.Check(tree, cfg)...)
	}
	return diags
}

// applyFirstFix finds the first diagnostic whose rule offers a fix and
// applies it. A fixer declining a diagnostic is a no-op, not an error; the
// scan simply moves on.
func applyFirstFix(tree *syntax.Tree, diags []analysis.Diagnostic, cfg *config.Config) (*syntax.Tree, bool) {
	for _, d := range diags {
		fixer := fixerFor(d.RuleID)
		if fixer == nil {
			continue
		}
		if fixed, ok := fixer.Fix(tree, d, cfg); ok {
			return fixed, true
		}
	}
	return nil, false
}

// fixerFor returns the registered rule with the given id if it can fix.
func fixerFor(id string) analysis.Fixer {
	for _, rule := range analysis.Rules() {
		if rule.ID() != id {
			continue
		}
		if fixer, ok := rule.(analysis.Fixer); ok {
			return fixer
		}
	}
	return nil
}
