package editor

import (
	"fmt"
	"io"
)

var opLabels = map[Op]string{
	OpWrite: "Current text",
	OpUndo:  "Undo",
	OpRedo:  "Redo",
}

// NewPrinter returns a Listener that writes one line per event to w, naming
// the operation and the full resulting content.
func NewPrinter(w io.Writer) Listener {
	return ListenerFunc(func(e Event) {
		fmt.Fprintf(w, "%s: %s\n", Label(e.Op), e.Content)
	})
}

// Label is the human-readable name of op.
func Label(op Op) string {
	if l, ok := opLabels[op]; ok {
		return l
	}
	return string(op)
}
