// Package command wraps editor operations as Command values so they can be
// queued, scripted and replayed by an Invoker.
package command

import (
	"context"
	"fmt"

	"patterns/internal/editor"
	"patterns/internal/log"
)

// Command is one editor action bound to its receiver.
type Command interface {
	Execute()
	Name() string
}

// WriteCommand appends Text to the buffer.
type WriteCommand struct {
	Buffer *editor.Buffer
	Text   string
}

func (c WriteCommand) Execute()     { c.Buffer.Write(c.Text) }
func (c WriteCommand) Name() string { return fmt.Sprintf("write %q", c.Text) }

// UndoCommand steps the buffer back one snapshot.
type UndoCommand struct {
	Buffer *editor.Buffer
}

func (c UndoCommand) Execute()     { c.Buffer.Undo() }
func (c UndoCommand) Name() string { return "undo" }

// RedoCommand reapplies the last undone snapshot.
type RedoCommand struct {
	Buffer *editor.Buffer
}

func (c RedoCommand) Execute()     { c.Buffer.Redo() }
func (c RedoCommand) Name() string { return "redo" }

// Invoker executes commands in order and remembers what it ran.
type Invoker struct {
	executed []string
}

// Run executes cmds sequentially. ctx is checked between commands; a
// cancelled context stops the run and returns its error.
func (inv *Invoker) Run(ctx context.Context, cmds ...Command) error {
	for i, c := range cmds {
		if err := ctx.Err(); err != nil {
			log.Warn(log.CatCommand, "run cancelled", "done", i, "total", len(cmds))
			return fmt.Errorf("command %d of %d: %w", i+1, len(cmds), err)
		}
		c.Execute()
		inv.executed = append(inv.executed, c.Name())
		log.Debug(log.CatCommand, "executed", "name", c.Name())
	}
	return nil
}

// Executed returns the names of every command run so far.
func (inv *Invoker) Executed() []string {
	return append([]string(nil), inv.executed...)
}
