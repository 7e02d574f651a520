package memberorder

import "github.com/evanrichards/tree-styler-cs/internal/syntax"

// Accessibility is the ordinal priority class of an access-modifier
// combination. Smaller values are expected earlier in a type body.
type Accessibility int

const (
	Public Accessibility = iota
	Internal
	ProtectedInternal
	Protected
	Private
)

func (a Accessibility) String() string {
	switch a {
	case Public:
		return "public"
	case Internal:
		return "internal"
	case ProtectedInternal:
		return "protected internal"
	case Protected:
		return "protected"
	case Private:
		return "private"
	}
	return "private"
}

// Resolve maps the ordered access-modifier tokens of a declaration to its
// accessibility class. Resolution is total: no modifiers means private, the
// two-token protected internal combination is checked before the single-token
// rules, and any unrecognized shape defaults to the most restrictive class
// rather than failing.
func Resolve(modifiers []*syntax.Token) Accessibility {
	if len(modifiers) == 0 {
		return Private
	}
	if len(modifiers) == 2 && modifiers[0].Text == "protected" && modifiers[1].Text == "internal" {
		return ProtectedInternal
	}
	switch modifiers[0].Text {
	case "public":
		return Public
	case "internal":
		return Internal
	case "protected":
		return Protected
	case "private":
		return Private
	}
	return Private
}
