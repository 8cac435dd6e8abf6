package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"patterns/internal/config"
	"patterns/internal/editor"
)

func newTestModel() model {
	return InitialModel(editor.New(), config.Defaults().Theme)
}

// typeText simulates the user typing s into the input and pressing enter.
func typeText(m model, s string) model {
	if s != "" {
		m, _ = Update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
	m, _ = Update(m, tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func press(m model, t tea.KeyType) model {
	m, _ = Update(m, tea.KeyMsg{Type: t})
	return m
}

func TestEnterWritesInputAndClearsIt(t *testing.T) {
	m := newTestModel()

	m = typeText(m, "Hola")
	m = typeText(m, " Mundo")

	if got := m.buffer.Content(); got != "Hola Mundo" {
		t.Fatalf("content = %q, want %q", got, "Hola Mundo")
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared after write, got %q", m.input.Value())
	}
	if rows := m.eventTable.Rows(); len(rows) != 2 || rows[0][2] != `"Hola Mundo"` {
		t.Errorf("unexpected history rows: %v", rows)
	}
}

func TestUndoRedoKeys(t *testing.T) {
	m := newTestModel()
	m = typeText(m, "Hola")
	m = typeText(m, " Mundo")

	steps := []struct {
		key        tea.KeyType
		want       string
		wantStatus string
	}{
		{tea.KeyCtrlZ, "Hola", ""},
		{tea.KeyCtrlZ, "", ""},
		{tea.KeyCtrlZ, "", "Nothing to undo."},
		{tea.KeyCtrlY, "Hola", ""},
		{tea.KeyCtrlY, "Hola Mundo", ""},
		{tea.KeyCtrlY, "Hola Mundo", "Nothing to redo."},
	}

	for i, step := range steps {
		m = press(m, step.key)
		if got := m.buffer.Content(); got != step.want {
			t.Fatalf("step %d: content = %q, want %q", i, got, step.want)
		}
		if m.Status != step.wantStatus {
			t.Errorf("step %d: status = %q, want %q", i, m.Status, step.wantStatus)
		}
	}

	// Two writes, two undos, two redos; the no-ops are not in the history.
	if n := len(m.log.events); n != 6 {
		t.Errorf("expected 6 recorded events, got %d", n)
	}
}

func TestWriteAfterUndoDropsRedo(t *testing.T) {
	m := newTestModel()
	m = typeText(m, "Hola")
	m = typeText(m, " Mundo")
	m = press(m, tea.KeyCtrlZ)
	m = typeText(m, "!")
	m = press(m, tea.KeyCtrlY)

	if got := m.buffer.Content(); got != "Hola!" {
		t.Errorf("content = %q, want %q", got, "Hola!")
	}
	if m.Status != "Nothing to redo." {
		t.Errorf("status = %q", m.Status)
	}
}

func TestEmptyEnterStillWrites(t *testing.T) {
	m := newTestModel()
	m = typeText(m, "a")
	m = press(m, tea.KeyCtrlZ)
	m = typeText(m, "")

	if m.buffer.CanRedo() {
		t.Error("empty write should clear redo history")
	}
	if m.buffer.UndoDepth() != 1 {
		t.Errorf("undo depth = %d, want 1", m.buffer.UndoDepth())
	}
	if !strings.Contains(m.Status, "redo history cleared") {
		t.Errorf("status = %q", m.Status)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := newTestModel()
		m = typeText(m, "bye")
		m, cmd := HandleKeyMsg(m, tea.KeyMsg{Type: key})
		if m.ActiveView != ViewQuitting {
			t.Errorf("%v: expected quitting view", key)
		}
		if cmd == nil {
			t.Errorf("%v: expected quit command", key)
		}

		// Input after quitting is ignored.
		m = press(m, tea.KeyCtrlZ)
		if m.buffer.Content() != "bye" {
			t.Errorf("%v: buffer changed after quit: %q", key, m.buffer.Content())
		}
		if !strings.Contains(ModelView(m), `Final text: "bye"`) {
			t.Errorf("%v: unexpected quit view %q", key, ModelView(m))
		}
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel()
	m = typeText(m, "Hola")

	m, _ = Update(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
	if len(m.eventTable.Rows()) != 1 {
		t.Errorf("history rows lost on resize: %v", m.eventTable.Rows())
	}
}
