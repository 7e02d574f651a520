// Package diff provides unified diff generation for dry-run output.
package diff

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around each hunk.
const contextLines = 3

// Unified generates a unified diff between oldText and newText.
// Returns an empty string if the inputs are identical.
func Unified(filename, oldText, newText string) string {
	if oldText == newText {
		return ""
	}

	oldLines := splitLines(oldText)
	newLines := splitLines(newText)
	edits := diffLines(oldLines, newLines)
	hunks := buildHunks(edits, len(oldLines), len(newLines))
	if len(hunks) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", filename)
	fmt.Fprintf(&b, "+++ b/%s\n", filename)
	for _, h := range hunks {
		h.writeTo(&b, oldLines, newLines)
	}
	return b.String()
}

// splitLines splits text into lines, keeping line breaks attached. An empty
// string produces zero lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// editKind represents a diff operation.
type editKind int

const (
	editEqual editKind = iota
	editInsert
	editDelete
)

// edit is a single diff operation over one line.
type edit struct {
	kind   editKind
	oldIdx int // index in oldLines (-1 for inserts)
	newIdx int // index in newLines (-1 for deletes)
}

// diffLines computes a line-level edit script from a longest-common-
// subsequence table. Inputs here are single files, so the quadratic table
// stays small.
func diffLines(oldLines, newLines []string) []edit {
	m, n := len(oldLines), len(newLines)
	lcs := make([][]int, m+1)
	for i := range lcs {
		lcs[i] = make([]int, n+1)
	}
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var edits []edit
	i, j := 0, 0
	for i < m && j < n {
		switch {
		case oldLines[i] == newLines[j]:
			edits = append(edits, edit{kind: editEqual, oldIdx: i, newIdx: j})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			edits = append(edits, edit{kind: editDelete, oldIdx: i, newIdx: -1})
			i++
		default:
			edits = append(edits, edit{kind: editInsert, oldIdx: -1, newIdx: j})
			j++
		}
	}
	for ; i < m; i++ {
		edits = append(edits, edit{kind: editDelete, oldIdx: i, newIdx: -1})
	}
	for ; j < n; j++ {
		edits = append(edits, edit{kind: editInsert, oldIdx: -1, newIdx: j})
	}
	return edits
}

// hunk is a run of edits plus surrounding context.
type hunk struct {
	oldStart, oldCount int
	newStart, newCount int
	edits              []edit
}

// buildHunks groups changed edits with up to contextLines of surrounding
// equal lines, merging hunks whose contexts touch.
func buildHunks(edits []edit, oldLen, newLen int) []hunk {
	var hunks []hunk
	i := 0
	for i < len(edits) {
		if edits[i].kind == editEqual {
			i++
			continue
		}

		start := i - contextLines
		if start < 0 {
			start = 0
		}
		end := i
		// Extend through subsequent changes separated by small equal runs.
		for j := i; j < len(edits); j++ {
			if edits[j].kind != editEqual {
				end = j + 1
				continue
			}
			if j-end >= contextLines*2 {
				break
			}
		}
		stop := end + contextLines
		if stop > len(edits) {
			stop = len(edits)
		}

		h := hunk{edits: edits[start:stop]}
		h.oldStart, h.newStart = hunkStart(edits[start], oldLen, newLen)
		for _, e := range h.edits {
			if e.kind != editInsert {
				h.oldCount++
			}
			if e.kind != editDelete {
				h.newCount++
			}
		}
		hunks = append(hunks, h)
		i = stop
	}
	return hunks
}

// hunkStart derives 1-based start lines for the hunk header.
func hunkStart(first edit, oldLen, newLen int) (oldStart, newStart int) {
	oldStart, newStart = first.oldIdx+1, first.newIdx+1
	if first.oldIdx < 0 {
		oldStart = 1
		if oldLen == 0 {
			oldStart = 0
		}
	}
	if first.newIdx < 0 {
		newStart = 1
		if newLen == 0 {
			newStart = 0
		}
	}
	return oldStart, newStart
}

// writeTo renders the hunk in unified format.
func (h hunk) writeTo(b *strings.Builder, oldLines, newLines []string) {
	fmt.Fprintf(b, "@@ -%d,%d +%d,%d @@\n", h.oldStart, h.oldCount, h.newStart, h.newCount)
	for _, e := range h.edits {
		switch e.kind {
		case editEqual:
			writeLine(b, ' ', oldLines[e.oldIdx])
		case editDelete:
			writeLine(b, '-', oldLines[e.oldIdx])
		case editInsert:
			writeLine(b, '+', newLines[e.newIdx])
		}
	}
}

// writeLine emits one diff line, marking a missing final newline the way
// standard diff tools do.
func writeLine(b *strings.Builder, marker byte, line string) {
	b.WriteByte(marker)
	b.WriteString(line)
	if !strings.HasSuffix(line, "\n") {
		b.WriteString("\n\\ No newline at end of file\n")
	}
}
