package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"patterns/internal/editor"
)

// maxScriptLine bounds a single script line; a write may carry a long text.
const maxScriptLine = 16 * 1024 * 1024

// ErrUnknownCommand is returned for a script line whose verb is not
// write, undo or redo.
var ErrUnknownCommand = errors.New("unknown command")

// DefaultScript walks through write, undo, redo and a redo cleared by a
// fresh write.
const DefaultScript = `# default editor walkthrough
write Hola
write  Mundo
undo
undo
redo
write !
redo
`

// ParseScript reads one command per line from r, bound to buf.
//
//	write <text>   text is everything after the first space or tab, verbatim
//	undo
//	redo
//
// Blank lines and lines starting with # are skipped. In write text, \n and
// \\ are decoded.
func ParseScript(r io.Reader, buf *editor.Buffer) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScriptLine)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		verb, rest, hasArg := cutVerb(strings.TrimLeft(line, " \t"))
		switch verb {
		case "write":
			cmds = append(cmds, WriteCommand{Buffer: buf, Text: unescape(rest)})
		case "undo", "redo":
			if hasArg && strings.TrimSpace(rest) != "" {
				return nil, fmt.Errorf("line %d: %s takes no argument", lineNumber, verb)
			}
			if verb == "undo" {
				cmds = append(cmds, UndoCommand{Buffer: buf})
			} else {
				cmds = append(cmds, RedoCommand{Buffer: buf})
			}
		default:
			return nil, fmt.Errorf("line %d: %w %q", lineNumber, ErrUnknownCommand, verb)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}
	return cmds, nil
}

// cutVerb splits line at its first space or tab.
func cutVerb(line string) (verb, rest string, found bool) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, "", false
	}
	return line[:i], line[i+1:], true
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
