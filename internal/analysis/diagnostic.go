package analysis

import (
	"fmt"

	"github.com/evanrichards/tree-styler-cs/internal/syntax"
)

// Severity defines the importance of a diagnostic.
type Severity int

const (
	// SeverityWarning is a style violation that does not block processing.
	SeverityWarning Severity = iota
	// SeverityError is reserved for violations configured as errors.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Diagnostic is an immutable record of one rule violation: which rule, where,
// and the ordered message arguments the rule's template was filled with.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Span     syntax.Span
	Line     int
	Column   int
	Message  string
	Args     []string
}

// String formats the diagnostic for CLI output.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s [%s]", d.Line, d.Column, d.Severity, d.Message, d.RuleID)
}
