package syntax

// Token is an immutable lexical unit: a grammar kind, its source text, and
// the trivia attached on either side. Substitution during rewriting is by
// identity (the specific *Token captured from a tree snapshot), so every
// With* method returns a fresh value rather than modifying the receiver.
type Token struct {
	Kind     string
	Text     string
	Leading  TriviaList
	Trailing TriviaList
	Span     Span
}

// WithLeading returns a copy of the token with the given leading trivia.
func (t *Token) WithLeading(trivia TriviaList) *Token {
	out := *t
	out.Leading = trivia
	return &out
}

// WithTrailing returns a copy of the token with the given trailing trivia.
func (t *Token) WithTrailing(trivia TriviaList) *Token {
	out := *t
	out.Trailing = trivia
	return &out
}

// FullText returns leading trivia + token text + trailing trivia.
func (t *Token) FullText() string {
	return t.Leading.Text() + t.Text + t.Trailing.Text()
}

func (t *Token) isElement() {}
