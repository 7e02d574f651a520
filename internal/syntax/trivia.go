package syntax

import "strings"

// TriviaKind identifies a single non-semantic source fragment.
type TriviaKind int

const (
	// TriviaWhitespace is a run of spaces and/or tabs with no line break.
	TriviaWhitespace TriviaKind = iota
	// TriviaNewline is a single line break ("\n" or "\r\n").
	TriviaNewline
	// TriviaLineComment is a "//" comment up to (not including) the line break.
	TriviaLineComment
	// TriviaBlockComment is a "/* ... */" comment, possibly spanning lines.
	TriviaBlockComment
)

// Trivia is one non-semantic fragment of source text attached to a token.
type Trivia struct {
	Kind TriviaKind
	Text string
}

// TriviaList is an immutable ordered sequence of trivia fragments. All edit
// methods return a new list; the receiver is never modified.
type TriviaList []Trivia

// Text returns the concatenated source text of the list.
func (l TriviaList) Text() string {
	var b strings.Builder
	for _, t := range l {
		b.WriteString(t.Text)
	}
	return b.String()
}

// TrimTrailingWhitespace returns a copy of the list with any trailing
// whitespace fragments removed. Line breaks and comments are kept, so a list
// that ends in a newline still ends in that newline afterwards. Trimming an
// empty list is a no-op.
func (l TriviaList) TrimTrailingWhitespace() TriviaList {
	end := len(l)
	for end > 0 && l[end-1].Kind == TriviaWhitespace {
		end--
	}
	return l.clone(end)
}

// AppendWhitespace returns a copy of the list with a whitespace fragment
// appended. Appending an empty string returns the list unchanged.
func (l TriviaList) AppendWhitespace(s string) TriviaList {
	if s == "" {
		return l
	}
	out := l.clone(len(l))
	return append(out, Trivia{Kind: TriviaWhitespace, Text: s})
}

// AppendNewline returns a copy of the list with a single line break appended.
func (l TriviaList) AppendNewline() TriviaList {
	out := l.clone(len(l))
	return append(out, Trivia{Kind: TriviaNewline, Text: "\n"})
}

// EndsWithNewline reports whether the last fragment is a line break.
func (l TriviaList) EndsWithNewline() bool {
	return len(l) > 0 && l[len(l)-1].Kind == TriviaNewline
}

// ContainsNewline reports whether any fragment is a line break.
func (l TriviaList) ContainsNewline() bool {
	for _, t := range l {
		if t.Kind == TriviaNewline {
			return true
		}
	}
	return false
}

// clone copies the first n fragments into a fresh slice so appends never
// alias the receiver's backing array.
func (l TriviaList) clone(n int) TriviaList {
	out := make(TriviaList, n, n+1)
	copy(out, l[:n])
	return out
}

// scanTrivia lexes raw gap text between two tokens into trivia fragments.
// It recognizes whitespace runs, line breaks, line comments, and block
// comments. Unterminated block comments consume the rest of the text.
func scanTrivia(text string) TriviaList {
	var out TriviaList
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == '\r' && i+1 < len(text) && text[i+1] == '\n':
			out = append(out, Trivia{Kind: TriviaNewline, Text: "\r\n"})
			i += 2
		case c == '\n' || c == '\r':
			out = append(out, Trivia{Kind: TriviaNewline, Text: text[i : i+1]})
			i++
		case c == ' ' || c == '\t':
			j := i
			for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
				j++
			}
			out = append(out, Trivia{Kind: TriviaWhitespace, Text: text[i:j]})
			i = j
		case c == '/' && i+1 < len(text) && text[i+1] == '/':
			j := i
			for j < len(text) && text[j] != '\n' && text[j] != '\r' {
				j++
			}
			out = append(out, Trivia{Kind: TriviaLineComment, Text: text[i:j]})
			i = j
		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			end := strings.Index(text[i+2:], "*/")
			j := len(text)
			if end >= 0 {
				j = i + 2 + end + 2
			}
			out = append(out, Trivia{Kind: TriviaBlockComment, Text: text[i:j]})
			i = j
		default:
			// Anything else in a token gap is unexpected; keep it as
			// whitespace-kind text so rendering stays lossless.
			out = append(out, Trivia{Kind: TriviaWhitespace, Text: text[i : i+1]})
			i++
		}
	}
	return out
}

// splitGap divides gap trivia between the preceding token's trailing list and
// the following token's leading list. Trailing trivia runs up to and including
// the first line break; everything after belongs to the next token.
func splitGap(gap TriviaList) (trailing, leading TriviaList) {
	for i, t := range gap {
		if t.Kind == TriviaNewline {
			return gap[:i+1], gap[i+1:]
		}
	}
	return gap, nil
}
