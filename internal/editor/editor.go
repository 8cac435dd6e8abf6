// Package editor holds the undo/redo text buffer.
//
// A Buffer keeps the current text plus two LIFO histories of full-text
// snapshots. Write pushes the previous text onto the undo history and clears
// the redo history; Undo and Redo move exactly one snapshot between the two
// histories. Undo or Redo with an empty history is a no-op, never an error.
package editor

import (
	"time"

	"patterns/internal/clock"
	"patterns/internal/log"
)

// Op names the operation that produced an Event.
type Op string

const (
	OpWrite Op = "write"
	OpUndo  Op = "undo"
	OpRedo  Op = "redo"
)

// Event reports the buffer content after a state-changing call.
type Event struct {
	Op      Op
	Content string
	At      time.Time
}

// Listener receives an Event after every Write and every Undo/Redo that
// changed the buffer.
type Listener interface {
	OnEdit(Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEdit(e Event) { f(e) }

// Buffer is a text buffer with snapshot undo/redo. It is not safe for
// concurrent use.
type Buffer struct {
	content   string
	undo      []string
	redo      []string
	listeners []Listener
	clock     clock.Clock
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithClock sets the clock used to stamp events.
func WithClock(c clock.Clock) Option {
	return func(b *Buffer) { b.clock = c }
}

// WithListener registers l at construction time.
func WithListener(l Listener) Option {
	return func(b *Buffer) { b.Subscribe(l) }
}

// New returns an empty buffer with empty histories.
func New(opts ...Option) *Buffer {
	b := &Buffer{}
	for _, opt := range opts {
		opt(b)
	}
	b.clock = clock.OrReal(b.clock)
	return b
}

// Subscribe registers l. Listeners are called in registration order.
func (b *Buffer) Subscribe(l Listener) {
	if l == nil {
		return
	}
	b.listeners = append(b.listeners, l)
}

// Write appends text. The previous content is saved for Undo and any pending
// redo chain is discarded, even when text is empty.
func (b *Buffer) Write(text string) {
	b.undo = append(b.undo, b.content)
	b.content += text
	b.redo = nil

	log.Debug(log.CatEditor, "write", "appended", len(text), "undo_depth", len(b.undo))
	b.notify(OpWrite)
}

// Undo restores the most recent undo snapshot. It reports whether anything
// changed.
func (b *Buffer) Undo() bool {
	prev, ok := pop(&b.undo)
	if !ok {
		return false
	}
	b.redo = append(b.redo, b.content)
	b.content = prev

	log.Debug(log.CatEditor, "undo", "undo_depth", len(b.undo), "redo_depth", len(b.redo))
	b.notify(OpUndo)
	return true
}

// Redo reapplies the most recently undone snapshot. It reports whether
// anything changed.
func (b *Buffer) Redo() bool {
	next, ok := pop(&b.redo)
	if !ok {
		return false
	}
	b.undo = append(b.undo, b.content)
	b.content = next

	log.Debug(log.CatEditor, "redo", "undo_depth", len(b.undo), "redo_depth", len(b.redo))
	b.notify(OpRedo)
	return true
}

// Content returns the current text.
func (b *Buffer) Content() string { return b.content }

func (b *Buffer) UndoDepth() int { return len(b.undo) }
func (b *Buffer) RedoDepth() int { return len(b.redo) }
func (b *Buffer) CanUndo() bool  { return len(b.undo) > 0 }
func (b *Buffer) CanRedo() bool  { return len(b.redo) > 0 }

// UndoHistory returns a copy of the undo snapshots, oldest first.
func (b *Buffer) UndoHistory() []string {
	return append([]string(nil), b.undo...)
}

// RedoHistory returns a copy of the redo snapshots, oldest first.
func (b *Buffer) RedoHistory() []string {
	return append([]string(nil), b.redo...)
}

func (b *Buffer) notify(op Op) {
	if len(b.listeners) == 0 {
		return
	}
	ev := Event{Op: op, Content: b.content, At: b.clock.Now()}
	for _, l := range b.listeners {
		l.OnEdit(ev)
	}
}

func pop(stack *[]string) (string, bool) {
	s := *stack
	if len(s) == 0 {
		return "", false
	}
	top := s[len(s)-1]
	*stack = s[:len(s)-1]
	return top, true
}
