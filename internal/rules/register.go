// Package rules registers every style rule with the analysis registry.
package rules

import (
	"github.com/evanrichards/tree-styler-cs/internal/analysis"
	"github.com/evanrichards/tree-styler-cs/internal/rules/blockformat"
	"github.com/evanrichards/tree-styler-cs/internal/rules/memberorder"
)

func init() {
	// Rules run in registration order.
	analysis.Register(memberorder.New())
	analysis.Register(blockformat.New())
}
