package syntax

// Span is a half-open byte range [Start, End) into the source a tree was
// parsed from. Spans on elements reused across a rewrite refer to the
// original source; rendering never depends on them.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether the byte offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Covers reports whether other lies entirely within s.
func (s Span) Covers(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}
