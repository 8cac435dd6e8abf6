// Package rewrite edits text files line by line while streaming the
// untouched lines through unchanged.
package rewrite

// LineRewriter copies, skips and inserts whole lines of an original document.
type LineRewriter interface {
	// CopyLinesUntil writes original lines [0..lineIndex-1] and leaves the
	// reader positioned at lineIndex.
	CopyLinesUntil(lineIndex int) error

	// ReplaceLines drops original lines startLine..endLine (inclusive) and
	// writes newLines in their place, leaving the reader at endLine+1.
	ReplaceLines(startLine, endLine int, newLines []string) error

	// CopyRemainingLines writes every original line not yet consumed.
	CopyRemainingLines() error

	// LineIndexOfByte maps a byte offset in the original to its 0-based line.
	LineIndexOfByte(offset int) int

	// Bytes returns the rewritten document.
	Bytes() []byte
}
