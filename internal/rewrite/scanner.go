package rewrite

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
)

// ScannerRewriter implements LineRewriter over an in-memory document using
// bufio.Scanner.
type ScannerRewriter struct {
	scanner     *bufio.Scanner
	output      bytes.Buffer
	consumed    int // original lines read so far
	eof         bool
	lineOffsets []int // byte offset where each original line begins
}

// NewScannerRewriter prepares a rewriter for content.
func NewScannerRewriter(content []byte) *ScannerRewriter {
	return &ScannerRewriter{
		scanner:     bufio.NewScanner(bytes.NewReader(content)),
		lineOffsets: BuildLineOffsets(content),
	}
}

// next reads one original line; ok is false at EOF.
func (rw *ScannerRewriter) next() (line []byte, ok bool, err error) {
	if rw.eof {
		return nil, false, nil
	}
	if !rw.scanner.Scan() {
		rw.eof = true
		return nil, false, rw.scanner.Err()
	}
	rw.consumed++
	return rw.scanner.Bytes(), true, nil
}

func (rw *ScannerRewriter) writeLine(line []byte) {
	rw.output.Write(line)
	rw.output.WriteByte('\n')
}

func (rw *ScannerRewriter) CopyLinesUntil(lineIndex int) error {
	for rw.consumed < lineIndex {
		line, ok, err := rw.next()
		if err != nil || !ok {
			return err
		}
		rw.writeLine(line)
	}
	return nil
}

func (rw *ScannerRewriter) ReplaceLines(startLine, endLine int, newLines []string) error {
	if startLine < rw.consumed || endLine < startLine {
		return fmt.Errorf("invalid line range %d-%d (already at line %d)", startLine, endLine, rw.consumed)
	}
	if err := rw.CopyLinesUntil(startLine); err != nil {
		return err
	}
	for rw.consumed <= endLine {
		_, ok, err := rw.next()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("line %d is past the end of the document", endLine)
		}
	}
	for _, nl := range newLines {
		rw.writeLine([]byte(nl))
	}
	return nil
}

func (rw *ScannerRewriter) CopyRemainingLines() error {
	for {
		line, ok, err := rw.next()
		if err != nil || !ok {
			return err
		}
		rw.writeLine(line)
	}
}

func (rw *ScannerRewriter) LineIndexOfByte(offset int) int {
	i := sort.Search(len(rw.lineOffsets), func(i int) bool {
		return rw.lineOffsets[i] > offset
	})
	if i == 0 {
		return 0
	}
	return i - 1
}

func (rw *ScannerRewriter) Bytes() []byte {
	return rw.output.Bytes()
}

// BuildLineOffsets returns the byte offset at which each line of content
// begins. E.g. for "ab\ncd" it returns [0, 3].
func BuildLineOffsets(content []byte) []int {
	offsets := []int{0}
	for i, b := range content {
		if b == '\n' && i+1 < len(content) {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// ReplaceAtOffsets rewrites content so that the line containing each byte
// offset in offsets is replaced by the matching entry of lines. offsets must
// be strictly increasing and fall on distinct lines.
func ReplaceAtOffsets(content []byte, offsets []int, lines []string) ([]byte, error) {
	if len(offsets) != len(lines) {
		return nil, fmt.Errorf("%d offsets for %d replacement lines", len(offsets), len(lines))
	}
	var rw LineRewriter = NewScannerRewriter(content)
	for i, off := range offsets {
		idx := rw.LineIndexOfByte(off)
		if err := rw.ReplaceLines(idx, idx, []string{lines[i]}); err != nil {
			return nil, fmt.Errorf("replacing line %d: %w", idx+1, err)
		}
	}
	if err := rw.CopyRemainingLines(); err != nil {
		return nil, err
	}
	return rw.Bytes(), nil
}
